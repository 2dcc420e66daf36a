package main

import (
	"fmt"

	"github.com/kopibot/kopi/src/config"
	"github.com/kopibot/kopi/src/storage"
)

// MigrateCmd manages database migrations.
type MigrateCmd struct {
	Up     MigrateUpCmd     `cmd:"" help:"Apply pending migrations"`
	Status MigrateStatusCmd `cmd:"" help:"Show applied migrations"`
}

// MigrateUpCmd applies pending migrations.
type MigrateUpCmd struct {
	DBPath string `help:"Database path (defaults to config)"`
}

func (c *MigrateUpCmd) Run(cli *CLI) error {
	db, err := openMigrationDB(cli, c.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("database %s is up to date\n", db.Path())
	return nil
}

// MigrateStatusCmd shows applied migration versions.
type MigrateStatusCmd struct {
	DBPath string `help:"Database path (defaults to config)"`
}

func (c *MigrateStatusCmd) Run(cli *CLI) error {
	db, err := openMigrationDB(cli, c.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := db.AppliedMigrations()
	if err != nil {
		return err
	}
	fmt.Printf("database: %s\n", db.Path())
	for _, v := range applied {
		fmt.Printf("  applied: %d\n", v)
	}
	return nil
}

// openMigrationDB resolves the database path (flag, then CLI override,
// then config) and opens it, which applies pending migrations.
func openMigrationDB(cli *CLI, flagPath string) (*storage.DB, error) {
	path := flagPath
	if path == "" {
		path = cli.Database
	}
	if path == "" {
		cfg, err := config.NewLoader().Load(cli.Config)
		if err != nil {
			return nil, err
		}
		path = cfg.Storage.DatabasePath
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
