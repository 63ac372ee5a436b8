package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"filmtag/internal/photo"
	"filmtag/internal/rolls"
)

func newListRollsCommand(ctx *commandContext) *cobra.Command {
	var rollPaths []string

	cmd := &cobra.Command{
		Use:   "list-rolls",
		Short: "List rolls from logbook documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rollPaths) == 0 {
				return fmt.Errorf("at least one roll document is required (-r)")
			}
			store, err := ctx.loadStore(rollPaths)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, store.Len())
			for _, roll := range store.List() {
				rows = append(rows, []string{
					roll.ID,
					strconv.Itoa(len(roll.Frames)),
					roll.Film,
					gearLabel(roll.Camera),
					roll.Load.String(),
					roll.Unload.String(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Frames", "Film", "Camera", "Loaded", "Unloaded"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rollPaths, "rolls", "r", nil, "Logbook document to ingest (repeatable)")
	return cmd
}

func newListFramesCommand(ctx *commandContext) *cobra.Command {
	var rollPaths []string
	var rollID string

	cmd := &cobra.Command{
		Use:   "list-frames",
		Short: "List the frames of one roll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rollPaths) == 0 {
				return fmt.Errorf("at least one roll document is required (-r)")
			}
			if rollID == "" {
				return fmt.Errorf("a roll identifier is required (--id)")
			}
			store, err := ctx.loadStore(rollPaths)
			if err != nil {
				return err
			}
			roll, err := store.Find(rollID)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(roll.Frames))
			for _, frame := range roll.Frames {
				rows = append(rows, []string{
					strconv.Itoa(frame.Number),
					gearLabel(frame.Lens),
					rationalLabel(frame.Aperture),
					rationalLabel(frame.ShutterSpeed),
					rationalLabel(frame.Compensation),
					instantLabel(frame.DateTime),
					positionLabel(frame.Position),
					frame.Note,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Lens", "Aperture", "Shutter", "Comp", "Date", "Position", "Notes"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rollPaths, "rolls", "r", nil, "Logbook document to ingest (repeatable)")
	cmd.Flags().StringVar(&rollID, "id", "", "Roll identifier")
	return cmd
}

func gearLabel(gear *rolls.Gear) string {
	if gear == nil {
		return ""
	}
	return gear.String()
}

func rationalLabel(r *photo.Rational) string {
	if r == nil {
		return ""
	}
	return r.String()
}

func instantLabel(at *photo.Instant) string {
	if at == nil {
		return ""
	}
	return at.String()
}

func positionLabel(pos *photo.Position) string {
	if pos == nil {
		return ""
	}
	return pos.String()
}
