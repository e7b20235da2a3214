package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubepuzzle"
)

var sidesCmd = &cobra.Command{
	Use:   "sides",
	Short: "Show layer membership and face classification",
	Long: `Print the grid slots covered by every side and, for each slot, the sides it
belongs to. With --normal, classify a surface normal into the face it points at.`,
	RunE: runSides,
}

var sidesNormal string

func init() {
	rootCmd.AddCommand(sidesCmd)
	sidesCmd.Flags().StringVarP(&sidesNormal, "normal", "n", "", "Classify a normal given as x,y,z")
}

func runSides(cmd *cobra.Command, args []string) error {
	if sidesNormal != "" {
		n, err := parseVec3(sidesNormal)
		if err != nil {
			return err
		}
		fmt.Printf("%v -> %s\n", n, cubepuzzle.Classify(n))
		return nil
	}

	membership := cubepuzzle.BuildSideMembership()

	fmt.Println("Layer membership")
	fmt.Println("================")
	for _, side := range cubepuzzle.AllSides() {
		coords := membership[side]
		parts := make([]string, len(coords))
		for i, c := range coords {
			parts[i] = c.String()
		}
		kind := "outer"
		if side.IsMid() {
			kind = "slice"
		}
		fmt.Printf("%-14s %-5s %s\n", side, kind, strings.Join(parts, " "))
	}

	fmt.Println()
	fmt.Println("Sides per slot")
	fmt.Println("==============")
	for _, c := range cubepuzzle.AllCoords() {
		fmt.Printf("%-11s %v\n", c, membership.SidesContaining(c))
	}
	return nil
}

func parseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("normal must be x,y,z, got %q", s)
	}
	var v mgl64.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("normal component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}
