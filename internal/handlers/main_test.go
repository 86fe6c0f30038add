// internal/handlers/main_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go_5_vocab_ai/internal/model"
)

// testDB はパッケージ全体で共有するテスト用DBコネクション。
// INTEGRATION_TEST が未設定の場合は nil のままで、結合テストはスキップされる。
// モックベースのハンドラテストはDBに依存しない
var testDB *gorm.DB

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		log.Println("INTEGRATION_TEST not set; running handler tests without a database")
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct dockertest pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	// embedding 列のために vector 拡張入りのイメージを使う
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "pgvector/pgvector",
		Tag:        "pg16",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_ai_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=vocab_ai_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	}); err != nil {
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := testDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create vector extension: %s", err)
	}
	if err := testDB.AutoMigrate(
		&model.Profile{},
		&model.Category{},
		&model.Vocabulary{},
		&model.UserVerificationToken{},
		&model.PasswordResetToken{},
	); err != nil {
		log.Fatalf("Failed to migrate test database: %s", err)
	}

	exitCode := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(exitCode)
}

// requireIntegrationDB は結合テスト用のDBを返します。DBなしで実行された場合はスキップ
func requireIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("set INTEGRATION_TEST=1 to run database-backed handler tests")
	}
	return testDB
}

func clearTables(t *testing.T) {
	t.Helper()
	db := requireIntegrationDB(t)
	for _, table := range []string{"vocabularies", "categories", "user_verification_tokens", "password_reset_tokens", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}

// createRequest はテスト用のHTTPリクエストを作成します。
// profileID が指定されていれば X-Profile-ID ヘッダーを付与する
func createRequest(t *testing.T, method, url string, body interface{}, profileID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBodyBytes []byte
	var err error
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			reqBodyBytes, err = json.Marshal(body)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBodyBytes))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if profileID != nil {
		req.Header.Set("X-Profile-ID", profileID.String())
	}
	return req
}
