package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/e-dsin/maturity-sub005/internal/config"
)

func TestLoad(t *testing.T) {
	Convey("Given no file or environment overrides", t, func() {
		t.Setenv("MATURITY_CONFIG", "")

		cfg, err := config.Load()

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.MongoDatabase, ShouldEqual, "maturity")
		})
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("MATURITY_CONFIG", "")
		t.Setenv("MATURITY_ADDR", ":9090")
		t.Setenv("MATURITY_MONGO_URI", "mongodb://db:27017")
		t.Setenv("MATURITY_LOG_LEVEL", "debug")

		cfg, err := config.Load()

		Convey("Then the environment wins over the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.MongoURI, ShouldEqual, "mongodb://db:27017")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.RedisAddr, ShouldEqual, "localhost:6379")
		})
	})

	Convey("Given a YAML file layered under the environment", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		body := []byte("addr: \":7070\"\nmongo_database: \"maturity_test\"\n")
		So(os.WriteFile(path, body, 0o600), ShouldBeNil)

		t.Setenv("MATURITY_CONFIG", path)
		t.Setenv("MATURITY_ADDR", ":9090")

		cfg, err := config.Load()

		Convey("Then the file overrides defaults and the environment overrides the file", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.MongoDatabase, ShouldEqual, "maturity_test")
		})
	})

	Convey("Given an override that blanks a required field", t, func() {
		t.Setenv("MATURITY_CONFIG", "")
		t.Setenv("MATURITY_MONGO_URI", "")

		Convey("Then validation rejects the blank URI", func() {
			// An empty env value is still a set variable and overrides
			// the default.
			_, err := config.Load()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "mongo_uri")
		})
	})
}
