package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/AhmedKamal-41/dashboard-demo-streamlit/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "data/soccer_data.csv")
				convey.So(cfg.MinTopClubs, convey.ShouldEqual, 5)
				convey.So(cfg.MaxTopClubs, convey.ShouldEqual, 50)
				convey.So(cfg.DefaultTheme, convey.ShouldEqual, "blues")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CHAMPS_ADDR", ":8080")
			_ = os.Setenv("CHAMPS_DATASET_PATH", "/tmp/champions.csv")
			_ = os.Setenv("CHAMPS_DEFAULT_TOP_CLUBS", "10")
			_ = os.Setenv("CHAMPS_DEFAULT_THEME", "viridis")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/tmp/champions.csv")
				convey.So(cfg.DefaultTopClubs, convey.ShouldEqual, 10)
				convey.So(cfg.DefaultTheme, convey.ShouldEqual, "viridis")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":7070"
dataset_path: "/var/data/champions.csv"
watch_dataset: false
max_top_clubs: 30
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHAMPS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/var/data/champions.csv")
				convey.So(cfg.WatchDataset, convey.ShouldBeFalse)
				convey.So(cfg.MaxTopClubs, convey.ShouldEqual, 30)
				convey.So(cfg.MinTopClubs, convey.ShouldEqual, 5) // from defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":7070"
default_top_clubs: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHAMPS_CONFIG", tmpFile)
			_ = os.Setenv("CHAMPS_ADDR", ":8080") // should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")       // overridden by env
				convey.So(cfg.DefaultTopClubs, convey.ShouldEqual, 15) // from file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHAMPS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("CHAMPS_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("CHAMPS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with inverted top-N bounds", func() {
			_ = os.Setenv("CHAMPS_MIN_TOP_CLUBS", "40")
			_ = os.Setenv("CHAMPS_MAX_TOP_CLUBS", "10")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "max_top_clubs")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"CHAMPS_CONFIG",
		"CHAMPS_ADDR",
		"CHAMPS_DATASET_PATH",
		"CHAMPS_WATCH_DATASET",
		"CHAMPS_MIN_TOP_CLUBS",
		"CHAMPS_MAX_TOP_CLUBS",
		"CHAMPS_DEFAULT_TOP_CLUBS",
		"CHAMPS_DEFAULT_THEME",
		"CHAMPS_MAX_UPLOAD_BYTES",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "champs-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
