package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/hrportal/internal/backup"
	"github.com/julianstephens/hrportal/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Back up and delete the existing local database before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			snap, err := backup.NewManager(dbPath).Create()
			if err != nil {
				return fmt.Errorf("refusing to delete database without a backup: %w", err)
			}
			ctx.Printf("Backed up existing database to: %s\n", snap)
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized hrportal storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
