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

// Package cert provides loading of the server TLS certificate.
package cert

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ramesh/companyemployees/internal/system/config"
)

// CertificateServiceInterface defines the interface for server certificate operations.
type CertificateServiceInterface interface {
	GetTLSConfig(security config.SecurityConfig, serverHome string) (*tls.Config, error)
	GetCertificateThumbprint(tlsConfig *tls.Config) (string, error)
}

// CertificateService is the default implementation of CertificateServiceInterface.
type CertificateService struct{}

// NewCertificateService creates a new instance of CertificateService.
func NewCertificateService() CertificateServiceInterface {
	return &CertificateService{}
}

// GetTLSConfig loads the certificate and key files, resolved against the server home directory.
func (c *CertificateService) GetTLSConfig(security config.SecurityConfig,
	serverHome string) (*tls.Config, error) {
	if security.CertFile == "" || security.KeyFile == "" {
		return nil, errors.New("certificate and key files must be configured when TLS is enabled")
	}

	certFilePath := resolve(serverHome, security.CertFile)
	keyFilePath := resolve(serverHome, security.KeyFile)

	if _, err := os.Stat(certFilePath); os.IsNotExist(err) {
		return nil, errors.New("certificate file not found at " + certFilePath)
	}
	if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
		return nil, errors.New("key file not found at " + keyFilePath)
	}

	keyPair, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// GetCertificateThumbprint returns the base64 encoded SHA-256 thumbprint of the leaf certificate.
func (c *CertificateService) GetCertificateThumbprint(tlsConfig *tls.Config) (string, error) {
	if tlsConfig == nil || len(tlsConfig.Certificates) == 0 || len(tlsConfig.Certificates[0].Certificate) == 0 {
		return "", errors.New("no certificate found in TLS config")
	}

	parsed, err := x509.ParseCertificate(tlsConfig.Certificates[0].Certificate[0])
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(parsed.Raw)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func resolve(serverHome, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(serverHome, file)
}
