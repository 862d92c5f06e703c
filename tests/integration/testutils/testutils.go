/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	RepositoryRoot         = "../.."
	ServerHomeDir          = "../../target/out/.test"
	ServerBinary           = "companyemployees"
	TestDeploymentYamlPath = "./resources/deployment.yaml"
	SQLiteSchemaPath       = "repository/dbscripts/sqlite.sql"
	DatabaseFilePath       = "repository/database/company.db"
)

// BuildServer compiles the server binary into the test server home.
func BuildServer() error {
	log.Println("Building server...")

	serverHome, err := filepath.Abs(ServerHomeDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(serverHome, os.ModePerm); err != nil {
		return err
	}

	cmd := exec.Command("go", "build", "-o", filepath.Join(serverHome, ServerBinary), "./cmd/server")
	cmd.Dir = RepositoryRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	return nil
}

// PrepareServerHome copies the test deployment configuration into the server home.
func PrepareServerHome() error {
	log.Println("Preparing server home...")

	confDir := filepath.Join(ServerHomeDir, "repository", "conf")
	if err := os.MkdirAll(confDir, os.ModePerm); err != nil {
		return err
	}
	if err := copyFile(TestDeploymentYamlPath, filepath.Join(confDir, "deployment.yaml")); err != nil {
		return fmt.Errorf("failed to copy deployment.yaml: %w", err)
	}
	return nil
}

// CreateDatabase recreates the SQLite database from the schema and seed script.
func CreateDatabase() error {
	log.Println("Creating database...")

	script, err := os.ReadFile(filepath.Join(RepositoryRoot, SQLiteSchemaPath))
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	dbPath := filepath.Join(ServerHomeDir, DatabaseFilePath)
	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		return err
	}
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(string(script)); err != nil {
		return fmt.Errorf("failed to run schema script: %w", err)
	}
	return nil
}

// StartServer starts the server binary against the test server home.
func StartServer() (*exec.Cmd, error) {
	log.Println("Starting server...")

	serverHome, err := filepath.Abs(ServerHomeDir)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(filepath.Join(serverHome, ServerBinary), "-serverHome="+serverHome)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start server: %w", err)
	}
	return cmd, nil
}

// WaitForServer polls the readiness endpoint until the server reports UP or the timeout expires.
func WaitForServer(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, TestServerURL+"/health/readiness", nil)
		if err != nil {
			return err
		}
		resp, err := getHTTPClient().Do(req)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("server did not become ready within %s", timeout)
		case <-ticker.C:
		}
	}
}

// StopServer stops the server process.
func StopServer(cmd *exec.Cmd) {
	log.Println("Stopping server...")
	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Signal(os.Interrupt)
		done := make(chan struct{})
		go func() {
			_ = cmd.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			_ = cmd.Process.Kill()
			<-done
		}
	}
}

func copyFile(src, dest string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	destFile, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, srcFile)
	return err
}
