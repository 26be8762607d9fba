package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "テーブルを作成・更新する",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		_, closeDB, err := openDB(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		logger.Info("Migration completed")
		return nil
	},
}
