// Package assess provides CLI commands for answering assessment items from the
// terminal: progress, answers, notes, and voice-note dictation.
package assess

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/windgap/sensoryprofile/internal/analysis"
	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/config"
	"github.com/windgap/sensoryprofile/internal/db"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/models"
	"github.com/windgap/sensoryprofile/internal/repositories"
	"github.com/windgap/sensoryprofile/internal/transcript"
)

var Group = &cobra.Group{
	ID:    "assess",
	Title: "Assessment operations",
}

// withSession loads the persisted session, runs fn, and saves the session again
// when fn reports it mutated something.
func withSession(ctx context.Context, fn func(ctx context.Context, cfg config.Config, session *models.Session) (bool, error)) error {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	database, err := db.NewDatabase(cfg.SQLiteURL)
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
	}()

	sessions := repositories.NewSessionRepository(database, logger)
	session, err := sessions.Load(ctx)
	if err != nil {
		return err
	}

	mutated, err := fn(ctx, cfg, session)
	if err != nil {
		return err
	}
	if mutated {
		return sessions.Save(ctx, session)
	}
	return nil
}

var Status = &cobra.Command{
	Use:     "status",
	GroupID: "assess",
	Short:   "Show completion progress",
	Long:    "Shows overall completion and per-category answered counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSession(cmd.Context(), func(_ context.Context, _ config.Config, session *models.Session) (bool, error) {
			fmt.Printf("Progress: %d%% complete\n", analysis.Progress(session))
			for _, category := range catalogue.Categories() {
				answered := analysis.CategoryTally(session, category).Total()
				fmt.Printf("  %-24s %d/%d\n", category.Title, answered, len(category.Items))
			}
			return false, nil
		})
	},
}

var Answer = &cobra.Command{
	Use:     "answer [item-key] [avoids|seeks|mixed|neutral]",
	GroupID: "assess",
	Short:   "Record a selection for an item",
	Long: `Records a selection for a catalogue item, e.g. "answer tactile-0 seeks".
Selecting the currently active value clears the answer.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(_ context.Context, _ config.Config, session *models.Session) (bool, error) {
			itemKey := args[0]
			if _, _, err := catalogue.Lookup(itemKey); err != nil {
				return false, err
			}
			selection, ok := models.ParseSelection(args[1])
			if !ok {
				return false, errors.New("selection must be one of avoids, seeks, mixed, neutral")
			}
			session.SetSelection(itemKey, selection)
			if session.IsAnswered(itemKey) {
				fmt.Printf("%s: %s\n", itemKey, selection.Label())
			} else {
				fmt.Printf("%s: answer cleared\n", itemKey)
			}
			return true, nil
		})
	},
}

var Note = &cobra.Command{
	Use:     "note [item-key] [text...]",
	GroupID: "assess",
	Short:   "Replace the notes of an item",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(_ context.Context, _ config.Config, session *models.Session) (bool, error) {
			itemKey := args[0]
			if _, _, err := catalogue.Lookup(itemKey); err != nil {
				return false, err
			}
			session.SetNotes(itemKey, strings.Join(args[1:], " "))
			return true, nil
		})
	},
}

var Dictate = &cobra.Command{
	Use:     "dictate [item-key] [audio-file]",
	GroupID: "assess",
	Short:   "Append a voice note to an item",
	Long:    "Transcribes a recorded audio file and appends the transcript to the item's notes",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, cfg config.Config, session *models.Session) (bool, error) {
			itemKey := args[0]
			if _, _, err := catalogue.Lookup(itemKey); err != nil {
				return false, err
			}
			source := transcript.NewWhisperSource(cfg.OpenAIAPIKey)
			text, err := source.Transcribe(ctx, args[1])
			if errors.Is(err, transcript.ErrUnavailable) {
				fmt.Println("Voice transcription is not available: set OPENAI_API_KEY to enable it.")
				return false, nil
			}
			if err != nil {
				return false, err
			}
			session.AppendNotes(itemKey, text)
			fmt.Printf("%s notes: %s\n", itemKey, session.Responses[itemKey].Notes)
			return true, nil
		})
	},
}
