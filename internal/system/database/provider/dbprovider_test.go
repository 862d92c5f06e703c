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

package provider

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ramesh/companyemployees/internal/system/config"
	"github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
	provider *DBProvider
	home     string
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
	suite.provider = &DBProvider{}
}

func (suite *DBProviderTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.provider.Close())
	config.ResetServerRuntime()
}

func (suite *DBProviderTestSuite) initRuntime(dataSource config.DataSource) {
	config.ResetServerRuntime()
	cfg := &config.Config{Database: config.DatabaseConfig{Company: dataSource}}
	require.NoError(suite.T(), config.InitializeServerRuntime(suite.home, cfg))
}

func (suite *DBProviderTestSuite) TestGetDBConfigPostgres() {
	dbConfig, err := suite.provider.getDBConfig(config.DataSource{
		Type:     "postgres",
		Hostname: "localhost",
		Port:     5432,
		Name:     "companyemployees",
		Username: "app",
		Password: "secret",
		SSLMode:  "disable",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "postgres", dbConfig.driverName)
	assert.Equal(suite.T(),
		"host=localhost port=5432 user=app password=secret dbname=companyemployees sslmode=disable", dbConfig.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigSQLite() {
	suite.initRuntime(config.DataSource{})

	dbConfig, err := suite.provider.getDBConfig(config.DataSource{
		Type:    "sqlite",
		Path:    "repository/database/companyemployees.db",
		Options: "_pragma=busy_timeout(5000)",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sqlite", dbConfig.driverName)
	assert.Equal(suite.T(), suite.home+"/repository/database/companyemployees.db?_pragma=busy_timeout(5000)",
		dbConfig.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigMySQL() {
	dbConfig, err := suite.provider.getDBConfig(config.DataSource{
		Type:     "mysql",
		Hostname: "db.local",
		Port:     3306,
		Name:     "companyemployees",
		Username: "app",
		Password: "secret",
		Options:  "charset=utf8mb4",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "mysql", dbConfig.driverName)
	assert.Contains(suite.T(), dbConfig.dsn, "app:secret@tcp(db.local:3306)/companyemployees")
	assert.Contains(suite.T(), dbConfig.dsn, "charset=utf8mb4")

	parsed, err := mysql.ParseDSN(dbConfig.dsn)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), parsed.ClientFoundRows)
	assert.Equal(suite.T(), "companyemployees", parsed.DBName)
}

func (suite *DBProviderTestSuite) TestBuildMySQLDSNReportsMatchedRows() {
	dsn, err := buildMySQLDSN(config.DataSource{Hostname: "localhost", Port: 3306, Name: "company"})

	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), dsn, "clientFoundRows=true")
}

func (suite *DBProviderTestSuite) TestGetDBConfigMySQLInvalidOptions() {
	_, err := suite.provider.getDBConfig(config.DataSource{Type: "mysql", Options: "%zz"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid mysql options")
}

func (suite *DBProviderTestSuite) TestGetDBConfigUnsupportedType() {
	_, err := suite.provider.getDBConfig(config.DataSource{Type: "oracle"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "unsupported database type")
}

func (suite *DBProviderTestSuite) TestGetDBClientUnsupportedName() {
	client, err := suite.provider.GetDBClient("identity")

	assert.Nil(suite.T(), client)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "unsupported database name")
}

func (suite *DBProviderTestSuite) TestGetDBClientSQLite() {
	suite.initRuntime(config.DataSource{Type: "sqlite", Path: "company.db", MaxOpenConns: 1})

	client, err := suite.provider.GetDBClient(constants.CompanyDBName)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.DBTypeSQLite, client.GetDBType())

	results, err := client.Query(context.Background(), model.DBQuery{ID: "TST-01", Query: "SELECT 1 AS ONE"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []map[string]interface{}{{"one": int64(1)}}, results)

	again, err := suite.provider.GetDBClient(constants.CompanyDBName)
	require.NoError(suite.T(), err)
	assert.Same(suite.T(), client, again)
}
