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

package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/ramesh/companyemployees/tests/integration/testutils"
)

const serverStartTimeout = 30 * time.Second

func main() {
	if err := testutils.BuildServer(); err != nil {
		fmt.Printf("Failed to build server: %v\n", err)
		os.Exit(1)
	}

	if err := testutils.PrepareServerHome(); err != nil {
		fmt.Printf("Failed to prepare server home: %v\n", err)
		os.Exit(1)
	}

	if err := testutils.CreateDatabase(); err != nil {
		fmt.Printf("Failed to create database: %v\n", err)
		os.Exit(1)
	}

	serverCmd, err := testutils.StartServer()
	if err != nil {
		fmt.Printf("Failed to start server: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Waiting for the server to start...")
	if err := testutils.WaitForServer(serverStartTimeout); err != nil {
		fmt.Printf("Server is not ready: %v\n", err)
		testutils.StopServer(serverCmd)
		os.Exit(1)
	}

	err = runTests()
	testutils.StopServer(serverCmd)
	if err != nil {
		fmt.Printf("there are test failures: %v\n", err)
		os.Exit(1)
	}
}

func runTests() error {
	// The server and the test suite are separate processes, so cached results are never valid.
	cmd := exec.Command("go", "clean", "-testcache")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to clean test cache: %w", err)
	}

	args := []string{"-tags", "integration", "-p=1", "./..."}
	if _, err := exec.LookPath("gotestsum"); err == nil {
		fmt.Println("Running integration tests using gotestsum...")
		cmd = exec.Command("gotestsum", append([]string{"--format", "testname", "--"}, args...)...)
	} else {
		fmt.Println("Running integration tests using go test...")
		cmd = exec.Command("go", append([]string{"test", "-v"}, args...)...)
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
