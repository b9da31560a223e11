package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathskills/internal/config"
	"github.com/abhisek/mathskills/internal/logging"
	"github.com/abhisek/mathskills/internal/page"
	"github.com/abhisek/mathskills/internal/skilltree"
	"github.com/abhisek/mathskills/internal/store"
)

// env is resolved once per invocation before any subcommand runs.
var env struct {
	cfg config.Config
	log zerolog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "mathskills",
	Short: "Arithmetic skill heat maps",
	Long: "mathskills scores a learner's arithmetic facts (numbers, addition, subtraction,\n" +
		"multiplication, division) and renders them as colour-coded grids.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".env")
		if err != nil {
			return err
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		if err != nil {
			return err
		}
		env.cfg, env.log = cfg, log
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database file or DSN (overrides MATHSKILLS_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MATHSKILLS_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("user", "", "Learner to score (overrides MATHSKILLS_USER)")
	rootCmd.Flags().String("target", "", "Skill whose category tab opens first")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDB returns the driver and DSN using --db flag (highest priority),
// then MATHSKILLS_DB env var, then the default XDG path for SQLite.
func resolveDB(cmd *cobra.Command) (driver, dsn string, err error) {
	driver = env.cfg.DBDriver
	dsn = env.cfg.DB
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dsn = p
	}

	switch {
	case dsn == "" && driver == store.DriverPostgres:
		return "", "", errors.New("MATHSKILLS_DB must hold a DSN when the driver is postgres")
	case dsn == "":
		dsn, err = store.DefaultDBPath()
		return driver, dsn, err
	case driver == store.DriverSQLite:
		return driver, dsn, store.EnsureDir(dsn)
	}
	return driver, dsn, nil
}

// openStore opens the store named by flags and config.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, dsn, err := resolveDB(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database: %w", err)
	}
	st, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	env.log.Debug().Str("driver", driver).Str("dialect", st.Dialect()).Msg("store opened")
	return st, nil
}

// resolveUser returns --user or the configured default learner.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	return env.cfg.User
}

// renderPage runs one render pass against the store.
func renderPage(cmd *cobra.Command, st *store.Store, target string) (*page.PageModel, error) {
	a := page.NewAssembler(st.SkillRepo(), env.log)
	m, err := a.RenderMySkills(cmd.Context(), resolveUser(cmd), target)
	if errors.Is(err, skilltree.ErrNotFound) {
		return nil, fmt.Errorf("%w (run `mathskills seed` to load the skill forest)", err)
	}
	return m, err
}
