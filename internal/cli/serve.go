package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbook/internal/catalog"
	intconfig "travelbook/internal/config"
	intdb "travelbook/internal/db"
	router "travelbook/internal/http"
	"travelbook/internal/http/handlers"
	"travelbook/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := opts.env
			if env.GinMode != "" {
				gin.SetMode(env.GinMode)
			}

			db, err := opts.open()
			if err != nil {
				return err
			}
			defer intconfig.CloseDB()

			if migrate {
				if err := intdb.Migrate(cmd.Context(), db, env.DBDriver); err != nil {
					return err
				}
			}

			hd := handlers.NewHandler(db, env.DBDriver, catalog.Default(), storage.MediaStore{
				Root:      env.MediaRoot,
				URLPrefix: env.MediaURL,
				MaxBytes:  env.MaxUploadMB << 20,
			})
			r, err := router.NewRouter(env, hd)
			if err != nil {
				return err
			}
			return serve(env.AppAddr, r)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "create missing tables before serving")
	return cmd
}

func serve(addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("server listening on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errc:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("server stopped cleanly")
	return nil
}
