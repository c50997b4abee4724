package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the reference index cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored reference index",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if !cfg.Cache.Enabled {
		fmt.Println("Cache is disabled, nothing to clear.")
		return nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	infos, err := st.ListIndexes()
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Printf("Removed %d reference index(es) from %s\n", len(infos), cfg.CacheDBPath(GetRootDir()))
	return nil
}
