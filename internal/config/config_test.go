package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.Storage.Dir, ".")
	is.Equal(cfg.Storage.Key, "vacationPlannerData")
	is.True(!cfg.Storage.Ephemeral)
	is.Equal(cfg.Planner.TotalVacationDays, 30)
	is.Equal(cfg.Log.Level, "info")
	is.Equal(cfg.Log.File, "vacation.log")
}

func TestLoad_File(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "storage:\n  dir: /tmp/planner\nplanner:\n  total_vacation_days: 25\nlog:\n  format: json\n"
	is.NoErr(os.WriteFile(path, []byte(yaml), 0600))

	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Storage.Dir, "/tmp/planner")
	is.Equal(cfg.Storage.Key, "vacationPlannerData")
	is.Equal(cfg.Planner.TotalVacationDays, 25)
	is.Equal(cfg.Log.Format, "json")
	is.Equal(cfg.Log.Level, "debug") // env wins over the file
}

func TestLoad_Invalid(t *testing.T) {
	is := is.New(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("VACATION_TOTAL_DAYS", "-1")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load("")
	is.True(err != nil)
}

func TestLoad_MissingFile(t *testing.T) {
	is := is.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	is.True(err != nil)
}
