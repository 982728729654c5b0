package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ezc/internal/fixture"
	"ezc/pkg/ezc"
)

var (
	fixtureData   []int
	setupCount    int
	teardownCount int
)

func init() {
	ezc.Setup("FixtureDemo", func() {
		fixtureData = make([]int, 10)
		for i := range fixtureData {
			fixtureData[i] = i * 10
		}
		setupCount++
		fmt.Printf("  [SETUP] fixture ready (%d)\n", setupCount)
	})
	ezc.Teardown("FixtureDemo", func() {
		fixtureData = nil
		teardownCount++
		fmt.Printf("  [TEARDOWN] fixture released (%d)\n", teardownCount)
	})

	ezc.Test("FixtureDemo", "ReadsSetupData", func(t *ezc.T) {
		t.AssertNotNil(fixtureData)
		ezc.ExpectEqual(t, fixtureData[0], 0)
		ezc.ExpectEqual(t, fixtureData[5], 50)
	})
	ezc.Test("FixtureDemo", "ReadsLastElement", func(t *ezc.T) {
		t.AssertNotNil(fixtureData)
		ezc.ExpectEqual(t, fixtureData[9], 90)
	})
	ezc.Test("FixtureDemo", "MutationDoesNotLeak", func(t *ezc.T) {
		t.AssertNotNil(fixtureData)
		ezc.ExpectEqual(t, fixtureData[0], 0)
		fixtureData[0] = 999
		ezc.ExpectEqual(t, fixtureData[0], 999)
	})

	ezc.Test("DeferDemo", "LIFOOrder", func(t *ezc.T) {
		var order []string
		t.Defer(func(data any) {
			order = append(order, data.(string))
			ezc.ExpectEqual(t, len(order), 2)
		}, "first")
		t.Defer(func(data any) {
			order = append(order, data.(string))
			ezc.ExpectEqual(t, order[0], "second")
		}, "second")
		ezc.ExpectEqual(t, len(order), 0)
	})
	ezc.Test("DeferDemo", "ClosesFile", func(t *ezc.T) {
		path := filepath.Join(os.TempDir(), fmt.Sprintf("ezc_defer_%d.txt", os.Getpid()))
		f, err := os.Create(path)
		t.AssertNil(err)
		t.Defer(func(data any) {
			os.Remove(data.(string))
		}, path)
		t.Defer(func(data any) {
			data.(*os.File).Close()
		}, f)

		_, err = fmt.Fprintln(f, "defer test")
		t.ExpectNil(err)
	})
	ezc.Test("DeferDemo", "RunsAfterFatalAssertion", func(t *ezc.T) {
		released := false
		t.Cleanup(func() {
			released = true
			t.Logf("resource released: %v", released)
		})
		ezc.AssertEqual(t, 1, 1)
	})

	ezc.Test("ExpectVsAssert", "ExpectContinues", func(t *ezc.T) {
		ezc.ExpectEqual(t, 1, 1)
		ezc.ExpectLess(t, 3, 4)
		ezc.ExpectEqual(t, 5, 5)
		t.Logf("every expectation was evaluated")
	})
	ezc.Test("ExpectVsAssert", "AssertStops", func(t *ezc.T) {
		ezc.AssertEqual(t, 1, 1)
		ezc.AssertEqual(t, 2, 2)
		ezc.AssertEqual(t, 5, 5)
		t.Logf("every assertion held")
	})

	ezc.Test("MixedDemo", "ResourceManagement", func(t *ezc.T) {
		data := make([]int, 100)
		t.Cleanup(func() { data = nil })
		for i := range data {
			data[i] = i
		}
		ezc.ExpectEqual(t, data[0], 0)
		ezc.ExpectEqual(t, data[50], 50)
		ezc.ExpectEqual(t, data[99], 99)
		ezc.AssertLess(t, data[10], data[20])
	})
	ezc.Test("MixedDemo", "ComplexTest", func(t *ezc.T) {
		first, second := "Resource 1", "Resource 2"
		ezc.ExpectNotEqual(t, first, second)
		ezc.ExpectEqual(t, len(first), len(second))
		ratio := float32(len(first)) / float32(len(second))
		t.ExpectFloatEqual(ratio, 1.0)
		t.ExpectNear(float64(ratio), 1.0, 0.001)
	})

	registerDatabaseSuite()

	// Failing suites show the failure output and are off by default.
	ezc.Test("FailureDemo", "ExpectFailure", func(t *ezc.T) {
		ezc.ExpectEqual(t, 1, 2)
		t.ExpectTrue(false)
		t.Logf("still running after failed expectations")
	})
	ezc.Test("FailureDemo", "AssertFailure", func(t *ezc.T) {
		ezc.AssertEqual(t, 1, 2)
		t.Logf("never printed")
	})
	if os.Getenv("EZC_DEMO_FAILURES") != "1" {
		ezc.Disable("FailureDemo", "ExpectFailure")
		ezc.Disable("FailureDemo", "AssertFailure")
	}
}

// registerDatabaseSuite binds a scratch MySQL database to DatabaseDemo when
// EZC_MYSQL=1. Connection settings come from DB_* variables.
func registerDatabaseSuite() {
	if os.Getenv("EZC_MYSQL") != "1" {
		return
	}

	db := fixture.NewDatabase(fixture.SettingsFromEnv(".env"), "DatabaseDemo")
	ezc.Setup("DatabaseDemo", db.Setup)
	ezc.Teardown("DatabaseDemo", db.Teardown)

	ezc.Test("DatabaseDemo", "CreateAndQuery", func(t *ezc.T) {
		t.AssertNil(db.Err())
		conn := db.Conn()
		t.AssertNotNil(conn)

		_, err := conn.Exec("CREATE TABLE items (id INT PRIMARY KEY, name VARCHAR(32))")
		t.AssertNil(err)
		_, err = conn.Exec("INSERT INTO items VALUES (1, 'alpha'), (2, 'beta')")
		t.AssertNil(err)

		var count int
		t.AssertNil(conn.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
		ezc.ExpectEqual(t, count, 2)
	})
	ezc.Test("DatabaseDemo", "StartsEmpty", func(t *ezc.T) {
		t.AssertNil(db.Err())
		var tables int
		err := db.Conn().QueryRow(
			"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = ?", db.Name(),
		).Scan(&tables)
		t.AssertNil(err)
		ezc.ExpectEqual(t, tables, 0)
	})
}
