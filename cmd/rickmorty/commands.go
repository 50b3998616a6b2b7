package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/export"
	"github.com/ytget/rickmorty/internal/i18n"
	"github.com/ytget/rickmorty/internal/model"
	"github.com/ytget/rickmorty/internal/ui"
)

// Values accepted by export --by
const (
	byName = "name"
	byID   = "id"
)

// displayError carries the translated message shown to the user while
// keeping the underlying error for errors.Is/As.
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }
func (e *displayError) Unwrap() error { return e.err }

func (c *cli) userError(err error) error {
	return &displayError{msg: c.translator.Error(err), err: err}
}

func (c *cli) client() (*api.Client, error) {
	return api.NewClient(c.defaults.APIURL,
		api.WithTimeout(c.defaults.Timeout),
		api.WithLogger(c.logger))
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			characters, err := client.ListCharacters(cmd.Context())
			if err != nil {
				return c.userError(err)
			}
			if len(characters) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), c.translator.Text(i18n.KeyNoCharacters))
				return nil
			}
			printCharacterTable(cmd.OutOrStdout(), characters)
			return nil
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one character by id",
		Long:  "Get uses the leading integer of <id>, so \"47abc\" shows character 47.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			character, err := c.resolve(cmd.Context(), client, byID, args[0])
			if err != nil {
				return err
			}
			lines := export.NewExporter(c.translator, c.logger).Lines(character)
			printCharacterDetail(cmd.OutOrStdout(), character, lines, c.translator.Text(i18n.KeyFieldStatus))
			return nil
		},
	}
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search characters by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			characters, err := client.SearchByName(cmd.Context(), args[0])
			if err != nil {
				return c.userError(err)
			}
			if len(characters) == 0 {
				return &displayError{msg: c.translator.Text(i18n.KeyNoMatchByName)}
			}
			printCharacterTable(cmd.OutOrStdout(), characters)
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		by, out string
		open    bool
	)
	cmd := &cobra.Command{
		Use:   "export <id|name>",
		Short: "Export a character sheet as PDF",
		Long: `Export looks the character up the same way the search screen does:
by name the first match is exported, by id the leading integer is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if by != byName && by != byID {
				return fmt.Errorf("--by must be %q or %q, got %q", byName, byID, by)
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			character, err := c.resolve(cmd.Context(), client, by, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = c.defaults.ExportDir
			}
			path, err := export.NewExporter(c.translator, c.logger).Save(out, character)
			if err != nil {
				return &displayError{msg: c.translator.Textf(i18n.KeyExportFailed, err.Error()), err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.translator.Textf(i18n.KeyExportSaved, path))
			if open && c.openFile != nil {
				if err := c.openFile(path); err != nil {
					c.logger.Warn("failed to open exported sheet", zap.String("path", path), zap.Error(err))
					return fmt.Errorf("open %s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", byName, "Lookup mode: name or id")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default: configured export dir)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the saved PDF with the default application")
	return cmd
}

// resolve finds the character to export
func (c *cli) resolve(ctx context.Context, client api.CharacterFetcher, by, term string) (model.Character, error) {
	if by == byID {
		id, ok := ui.ParseLeadingInt(term)
		if !ok {
			return model.Character{}, c.userError(&api.Error{Kind: api.KindNotFound})
		}
		character, err := client.GetCharacter(ctx, id)
		if err != nil {
			return model.Character{}, c.userError(err)
		}
		return character, nil
	}

	results, err := client.SearchByName(ctx, term)
	if err != nil {
		return model.Character{}, c.userError(err)
	}
	if len(results) == 0 {
		return model.Character{}, &displayError{msg: c.translator.Text(i18n.KeyNoMatchByName)}
	}
	c.logger.Debug("export match", zap.Int("character_id", results[0].ID), zap.Int("matches", len(results)))
	return results[0], nil
}
