package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
	"github.com/jhoicas/melo-compras/internal/domain/repository"
	"github.com/jhoicas/melo-compras/internal/infrastructure/meloapi"
)

func (a *app) newItensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itens",
		Short: "Catálogo de ítems",
	}
	cmd.AddCommand(a.newItensImportCmd())
	return cmd
}

type importOptions struct {
	file     string
	encoding string
	token    string
	email    string
	password string
	apiURL   string
	dryRun   bool
}

func (a *app) newItensImportCmd() *cobra.Command {
	var opts importOptions
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Da de alta en la API cada fila de un CSV/XLSX (discriminacao, unidade, preco)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runImport(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "archivo .csv o .xlsx")
	cmd.Flags().StringVar(&opts.encoding, "encoding", EncodingUTF8, "encoding del CSV: utf8, latin1, cp1252")
	cmd.Flags().StringVar(&opts.token, "token", os.Getenv("MELO_TOKEN"), "access token (o MELO_TOKEN)")
	cmd.Flags().StringVar(&opts.email, "email", "", "iniciar sesión con email en lugar de --token")
	cmd.Flags().StringVar(&opts.password, "password", os.Getenv("MELO_PASSWORD"), "contraseña para --email (o MELO_PASSWORD)")
	cmd.Flags().StringVar(&opts.apiURL, "api", "", "URL base de la API (por defecto MELO_API_BASE_URL)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "solo mostrar lo que se importaría")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) runImport(ctx context.Context, opts importOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := readCatalogFile(opts.file, opts.encoding)
	if err != nil {
		return err
	}
	if opts.dryRun {
		for _, r := range rows {
			fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", r.Line, r.Item.Description, r.Item.Unit, pricing.FormatAmount(r.Item.UnitPrice))
		}
		fmt.Fprintf(a.out, "%d ítems (dry-run)\n", len(rows))
		return nil
	}

	baseURL := opts.apiURL
	timeout := 15 * time.Second
	if baseURL == "" {
		cfg, err := a.config()
		if err != nil {
			return err
		}
		baseURL, timeout = cfg.MeloAPI.BaseURL, cfg.MeloAPI.Timeout()
	}
	log := a.logger()
	client := meloapi.NewClient(baseURL, timeout, log)

	sess, err := importSession(ctx, meloapi.NewAuthGateway(client), opts)
	if err != nil {
		return err
	}
	ok, failed := importRows(ctx, meloapi.NewCatalogRepository(client), sess, rows, func(r catalogRow, err error) {
		log.Error().Err(err).Int("linea", r.Line).Str("item", r.Item.Description).Msg("no se pudo importar")
	})
	fmt.Fprintf(a.out, "%d importados, %d con error\n", ok, failed)
	if failed > 0 {
		return fmt.Errorf("%d filas no se importaron", failed)
	}
	return nil
}

func importSession(ctx context.Context, gw repository.AuthGateway, opts importOptions) (entity.Session, error) {
	sess := entity.Session{Token: opts.token, RequestID: uuid.NewString()}
	if opts.email != "" {
		token, u, err := gw.Login(ctx, opts.email, opts.password)
		if err != nil {
			return entity.Session{}, fmt.Errorf("login: %w", err)
		}
		sess.Token = token
		if u != nil {
			sess.Name, sess.Role = u.Name, u.Role
		}
	}
	if !sess.Authenticated() {
		return entity.Session{}, errors.New("falta --token o --email")
	}
	return sess, nil
}

// importRows crea cada ítem; un error no detiene el resto.
func importRows(ctx context.Context, repo repository.CatalogRepository, sess entity.Session, rows []catalogRow, onErr func(catalogRow, error)) (ok, failed int) {
	for _, r := range rows {
		it := r.Item
		if _, err := repo.Create(ctx, sess, &it); err != nil {
			failed++
			onErr(r, err)
			continue
		}
		ok++
	}
	return ok, failed
}
