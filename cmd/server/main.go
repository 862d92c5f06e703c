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

// Package main is the entry point for starting the company employees server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/ramesh/companyemployees/internal/cert"
	"github.com/ramesh/companyemployees/internal/system/config"
	"github.com/ramesh/companyemployees/internal/system/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initServerConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	logger.Info("Loaded configurations", log.String("database", cfg.Database.Company.Type),
		log.Any("allowedOrigins", cfg.CORS.AllowedOrigins))

	mux := http.NewServeMux()
	registerServices(mux, cfg)

	server, serverAddr := createHTTPServer(logger, cfg, mux)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down server gracefully", log.Error(err))
		}
	}()

	var err error
	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		err = startHTTPServer(logger, server, serverAddr)
	} else {
		err = startTLSServer(logger, cfg, server, serverAddr, serverHome)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}

	logger.Info("Server stopped")
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHomeFlag := flag.String("serverHome", "", "Path to the server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using serverHome from command line argument", log.String("serverHome", *serverHomeFlag))
		return *serverHomeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initServerConfigurations loads the deployment configuration and initializes the server runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// startTLSServer starts the HTTPS server with the configured certificate.
func startTLSServer(logger *log.Logger, cfg *config.Config, server *http.Server, serverAddr,
	serverHome string) error {
	certService := cert.NewCertificateService()
	tlsConfig, err := certService.GetTLSConfig(cfg.Security, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}

	thumbprint, err := certService.GetCertificateThumbprint(tlsConfig)
	if err != nil {
		logger.Fatal("Failed to read server certificate", log.Error(err))
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Company employees server started (HTTPS)...", log.String("address", serverAddr),
		log.String("certThumbprint", thumbprint))
	return server.Serve(ln)
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, server *http.Server, serverAddr string) error {
	logger.Info("Company employees server started (HTTP)...", log.String("address", serverAddr))
	return server.ListenAndServe()
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           log.AccessLogHandler(logger, mux),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
