// Package export provides CLI commands for producing the report artifacts and the
// email submission handoff.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/windgap/sensoryprofile/internal/config"
	"github.com/windgap/sensoryprofile/internal/db"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/models"
	"github.com/windgap/sensoryprofile/internal/report"
	"github.com/windgap/sensoryprofile/internal/repositories"
	"github.com/windgap/sensoryprofile/internal/submission"
)

var Group = &cobra.Group{
	ID:    "export",
	Title: "Report export and submission",
}

func init() {
	Text.Flags().String("out", "", "output path, defaults to the standard report filename")
	PDF.Flags().String("out", "", "output path, defaults to the standard report filename")
}

func loadSession(ctx context.Context) (config.Config, *models.Session, error) {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	database, err := db.NewDatabase(cfg.SQLiteURL)
	if err != nil {
		return config.Config{}, nil, err
	}
	defer func() {
		_ = database.Close()
	}()

	session, err := repositories.NewSessionRepository(database, logger).Load(ctx)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, session, nil
}

func outPath(cmd *cobra.Command, session *models.Session, ext string) (string, error) {
	path, err := cmd.Flags().GetString("out")
	if err != nil {
		return "", errors.Wrap(err, "read out flag")
	}
	if path == "" {
		path = report.Filename(session, ext)
	}
	return path, nil
}

var Text = &cobra.Command{
	Use:     "text",
	GroupID: "export",
	Short:   "Export the plain-text report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}
		path, err := outPath(cmd, session, "txt")
		if err != nil {
			return err
		}
		if err = os.WriteFile(path, []byte(report.RenderText(session)), 0o644); err != nil {
			return errors.Wrap(err, "write text report")
		}
		fmt.Printf("Report written to %s\n", path)
		return nil
	},
}

var PDF = &cobra.Command{
	Use:     "pdf",
	GroupID: "export",
	Short:   "Export the paginated PDF report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}
		path, err := outPath(cmd, session, "pdf")
		if err != nil {
			return err
		}
		file, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create pdf file")
		}
		defer func() {
			_ = file.Close()
		}()
		if err = report.RenderPDF(report.Build(session), file); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)
		return nil
	},
}

var Submit = &cobra.Command{
	Use:     "submit",
	GroupID: "export",
	Short:   "Build the submission email link",
	Long: `Validates the assessment and prints the prefilled mailto link for the
configured recipient. Submission is blocked until the subject name is entered
and every item is answered.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}

		if err = submission.Validate(session); err != nil {
			var incomplete *submission.IncompleteError
			switch {
			case errors.Is(err, submission.ErrMissingName):
				fmt.Println("Cannot submit yet: enter the subject name first.")
			case errors.As(err, &incomplete):
				fmt.Printf("Cannot submit yet: %s.\n", incomplete.Error())
			default:
				return err
			}
			return nil
		}

		fmt.Println(submission.MailtoLink(session, cfg.SubmissionRecipient))
		return nil
	},
}
