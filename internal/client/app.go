package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/skillvance-api/internal/adapter"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
)

// Usage lists the supported commands.
const Usage = `commands:
  version                         print the server build
  verify <certId>                 verify a certificate
  internships [category]          list open internships
  me                              show the signed-in admin
  export messages|certificates    download a CSV export`

type App struct {
	api   adapter.AdminClient
	creds models.Credentials

	out io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI. creds are used for commands that need a session.
func NewApp(api adapter.AdminClient, creds models.Credentials, out io.Writer, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, ErrNoAPIClient
	}
	return &App{api: api, creds: creds, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given\n%s", ErrUnknownCommand, Usage)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "version":
		build, err := a.api.Version(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(build)

	case "verify":
		if len(rest) == 0 {
			return fmt.Errorf("%w: certificate id", ErrMissingArgument)
		}
		certificate, err := a.api.VerifyCertificate(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.printJSON(certificate)

	case "internships":
		var category models.Category
		if len(rest) > 0 {
			category = models.Category(rest[0])
		}
		internships, err := a.api.ActiveInternships(ctx, category)
		if err != nil {
			return err
		}
		return a.printJSON(internships)

	case "me":
		return a.withSession(ctx, func() error {
			account, err := a.api.Me(ctx)
			if err != nil {
				return err
			}
			return a.printJSON(account)
		})

	case "export":
		if len(rest) == 0 {
			return fmt.Errorf("%w: messages or certificates", ErrMissingArgument)
		}
		var export func(context.Context, io.Writer) error
		switch rest[0] {
		case "messages":
			export = a.api.ExportMessages
		case "certificates":
			export = a.api.ExportCertificates
		default:
			return fmt.Errorf("%w: export %s", ErrUnknownCommand, rest[0])
		}
		return a.withSession(ctx, func() error {
			return export(ctx, a.out)
		})

	default:
		return fmt.Errorf("%w: %s\n%s", ErrUnknownCommand, command, Usage)
	}
}

// withSession signs in, runs fn and revokes the session again.
func (a *App) withSession(ctx context.Context, fn func() error) error {
	if _, err := a.api.Login(ctx, a.creds); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	defer func() {
		if err := a.api.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout failed")
		}
	}()

	return fn()
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
