package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/contactform"
	"github.com/contactrelay/contactrelay/internal/email"
	"github.com/contactrelay/contactrelay/internal/logger"
	"github.com/contactrelay/contactrelay/internal/model"
	contactrelay "github.com/contactrelay/contactrelay/sdk/go"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Operator tool for the contact form relay",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newSubmitCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func bindFieldFlags(cmd *cobra.Command, s *contactrelay.Submission) {
	cmd.Flags().StringVar(&s.Nombre, "nombre", "", "first name")
	cmd.Flags().StringVar(&s.Apellido, "apellido", "", "last name")
	cmd.Flags().StringVar(&s.Email, "email", "", "reply-to address")
	cmd.Flags().StringVar(&s.Telefono, "telefono", "", "phone number")
	cmd.Flags().StringVar(&s.Mensaje, "mensaje", "", "message body")
}

func newPreviewCmd() *cobra.Command {
	var (
		sub    contactrelay.Submission
		format string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the notification email for a submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := model.ContactSubmission(sub)
			rendered, err := email.RenderContact(s)
			if err != nil {
				return fmt.Errorf("failed to render email: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Subject: %s\n\n", email.ContactSubject(s))
			switch format {
			case "html":
				fmt.Fprintln(out, rendered.HTML)
			case "text":
				fmt.Fprintln(out, rendered.Text)
			default:
				return fmt.Errorf("unknown format %q (want html or text)", format)
			}
			return nil
		},
	}
	bindFieldFlags(cmd, &sub)
	cmd.Flags().StringVar(&format, "format", "text", "body to print: html or text")
	return cmd
}

func newSubmitCmd() *cobra.Command {
	var (
		sub     contactrelay.Submission
		baseURL string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the contact form to a running relay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := contactrelay.NewClient(contactrelay.Config{BaseURL: baseURL})
			view := contactform.NewConsoleView(cmd.OutOrStdout(), sub)
			ctrl := contactform.New(view, client,
				contactform.WithLogger(logger.NewWithWriter(cmd.ErrOrStderr(), "warn", "console")))
			defer ctrl.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return ctrl.Submit(ctx)
		},
	}
	bindFieldFlags(cmd, &sub)
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "relay base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := yaml.Marshal(cfg.Redacted())
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
