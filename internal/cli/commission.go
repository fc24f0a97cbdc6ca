package cli

import (
	"fmt"

	"github.com/rpggio/commissions/internal/app"
	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/form"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func addFieldFlags(flags *pflag.FlagSet) {
	flags.String("client", "", "client name")
	flags.String("title", "", "commission title")
	flags.String("type", "", "commission type (Portrait, Half Body, Full Body, Chibi, Emote, Environment, Other)")
	flags.String("price", "", "price, e.g. 120.50")
	flags.String("deadline", "", "deadline as YYYY-MM-DD")
	flags.String("status", "", "status (Not Started, In Progress, Completed)")
	flags.String("notes", "", "free-form notes")
}

// overlayFields replaces each field whose flag was set on the command line.
func overlayFields(flags *pflag.FlagSet, f *form.Fields) {
	targets := map[string]*string{
		"client":   &f.Client,
		"title":    &f.Title,
		"type":     &f.Type,
		"price":    &f.Price,
		"deadline": &f.Deadline,
		"status":   &f.Status,
		"notes":    &f.Notes,
	}
	for name, target := range targets {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}
}

func addCmd(open OpenFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new commission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields form.Fields
			overlayFields(cmd.Flags(), &fields)
			in, err := fields.Input()
			if err != nil {
				return err
			}

			return withApp(cmd, open, func(a *app.App) error {
				c, err := a.Commissions.Create(cmd.Context(), in)
				if err != nil {
					return fmt.Errorf("failed to add commission: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Added commission %d: %s for %s\n", c.ID, c.Title, c.Client)
				return nil
			})
		},
	}
	addFieldFlags(cmd.Flags())
	return cmd
}

func showCmd(open OpenFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show commission details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, open, func(a *app.App) error {
				c, err := a.Commissions.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to show commission %d: %w", id, err)
				}
				printCommission(cmd, c)
				return nil
			})
		},
	}
}

func editCmd(open OpenFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a commission",
		Long:  "Edit a commission. Fields without a flag keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, open, func(a *app.App) error {
				current, err := a.Commissions.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to edit commission %d: %w", id, err)
				}

				fields := form.FieldsOf(*current)
				overlayFields(cmd.Flags(), &fields)
				in, err := fields.Input()
				if err != nil {
					return err
				}

				updated, err := a.Commissions.Update(cmd.Context(), id, in)
				if err != nil {
					return fmt.Errorf("failed to edit commission %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated commission %d\n", updated.ID)
				printCommission(cmd, updated)
				return nil
			})
		},
	}
	addFieldFlags(cmd.Flags())
	return cmd
}

func deleteCmd(open OpenFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a commission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, open, func(a *app.App) error {
				if err := a.Commissions.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete commission %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted commission %d\n", id)
				return nil
			})
		},
	}
}

func completeCmd(open OpenFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a commission as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, open, func(a *app.App) error {
				if err := a.Commissions.MarkComplete(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to complete commission %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Marked commission %d %s\n", id, statusLabel(commission.StatusCompleted))
				return nil
			})
		},
	}
}

func printCommission(cmd *cobra.Command, c *commission.Commission) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Commission: %d\n", c.ID)
	fmt.Fprintf(out, "Client: %s\n", c.Client)
	fmt.Fprintf(out, "Title: %s\n", c.Title)
	fmt.Fprintf(out, "Type: %s\n", c.Type)
	fmt.Fprintf(out, "Price: %s\n", form.Price(c.Price))
	fmt.Fprintf(out, "Deadline: %s\n", c.Deadline)
	fmt.Fprintf(out, "Status: %s\n", statusLabel(c.Status))
	if c.Notes != "" {
		fmt.Fprintf(out, "Notes: %s\n", c.Notes)
	}
}
