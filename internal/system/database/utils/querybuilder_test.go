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

package utils

import (
	"testing"

	"github.com/ramesh/companyemployees/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type QueryBuilderTestSuite struct {
	suite.Suite
}

func TestQueryBuilderSuite(t *testing.T) {
	suite.Run(t, new(QueryBuilderTestSuite))
}

func (suite *QueryBuilderTestSuite) TestPortableQuery() {
	query := PortableQuery("TST-01", "SELECT NAME FROM EMPLOYEE WHERE COMPANY_ID = ? AND AGE >= ?")

	assert.Equal(suite.T(), "TST-01", query.ID)
	assert.Equal(suite.T(), "SELECT NAME FROM EMPLOYEE WHERE COMPANY_ID = $1 AND AGE >= $2",
		query.GetQuery(model.DBTypePostgres))
	assert.Equal(suite.T(), "SELECT NAME FROM EMPLOYEE WHERE COMPANY_ID = ? AND AGE >= ?",
		query.GetQuery(model.DBTypeSQLite))
	assert.Equal(suite.T(), "SELECT NAME FROM EMPLOYEE WHERE COMPANY_ID = ? AND AGE >= ?",
		query.GetQuery(model.DBTypeMySQL))
}

func (suite *QueryBuilderTestSuite) TestPortableQueryIgnoresLiterals() {
	query := PortableQuery("TST-02", "SELECT 'what?' AS q FROM T WHERE A = ?")

	assert.Equal(suite.T(), "SELECT 'what?' AS q FROM T WHERE A = $1", query.PostgresQuery)
}

func (suite *QueryBuilderTestSuite) TestValidateKey() {
	assert.NoError(suite.T(), validateKey("EMPLOYEE_ID"))
	assert.NoError(suite.T(), validateKey("e.NAME"))
	assert.Error(suite.T(), validateKey(""))
	assert.Error(suite.T(), validateKey("NAME; DROP TABLE EMPLOYEE"))
	assert.Error(suite.T(), validateKey("NAME--"))
}
