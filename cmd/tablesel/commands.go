package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/tsawler/tablesel"
	"github.com/tsawler/tablesel/htmldoc"
)

// drag opens file and performs the drag described by the flags of cmd.
func (a *app) drag(cmd *cobra.Command, file string) (*tablesel.Session, int, []*html.Node, error) {
	table, fromStr, toStr, err := gesture(cmd.Flags())
	if err != nil {
		return nil, 0, nil, err
	}
	from, err := parseCoord(fromStr)
	if err != nil {
		return nil, 0, nil, err
	}
	to, err := parseCoord(toStr)
	if err != nil {
		return nil, 0, nil, err
	}

	s := a.session(file)
	cells, err := s.Select(table, from, to)
	if err != nil {
		s.Close()
		return nil, 0, nil, err
	}
	a.logger.WithField("cells", len(cells)).Debug("Selection done")
	return s, table, cells, nil
}

func (a *app) newSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select FILE",
		Short: "Drag across a table and print the selected cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, table, cells, err := a.drag(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			m, err := s.Matrix(table)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, cell := range cells {
				pos, _ := m.Position(cell)
				fmt.Fprintf(out, "%d,%d\t%s\n", pos.Row, pos.Col, htmldoc.TextContent(cell))
			}
			return nil
		},
	}
	addGestureFlags(cmd.Flags())
	return cmd
}

func (a *app) newExecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec FILE",
		Short: "Drag across a table, run a command and print the resulting HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := cmd.Flags().GetString("command")
			if err != nil {
				return err
			}

			s, _, _, err := a.drag(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			handled, err := s.Exec(command)
			if err != nil {
				return err
			}
			a.logger.WithField("command", command).WithField("handled", handled).Info("Command executed")

			out, err := s.HTML()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(out))
			return nil
		},
	}
	addGestureFlags(cmd.Flags())
	cmd.Flags().String("command", "", "editor command to run, e.g. tablemerge")
	_ = cmd.MarkFlagRequired("command")
	return cmd
}

func (a *app) newMatrixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix FILE",
		Short: "Print the logical matrix of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := cmd.Flags().GetInt("table")
			if err != nil {
				return err
			}
			s := a.session(args[0])
			defer s.Close()

			m, err := s.Matrix(table)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for r := 0; r < m.Height(); r++ {
				slots := make([]string, m.Width())
				for c := range slots {
					cell := m.At(r, c)
					switch {
					case cell == nil:
						slots[c] = "."
					case htmldoc.IsBlank(cell):
						slots[c] = "_"
					default:
						slots[c] = strings.ReplaceAll(htmldoc.TextContent(cell), "\n", " ")
					}
				}
				fmt.Fprintln(out, strings.Join(slots, "\t"))
			}
			return nil
		},
	}
	cmd.Flags().Int("table", 0, "index of the table in document order")
	return cmd
}
