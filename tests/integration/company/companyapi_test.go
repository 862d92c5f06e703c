//go:build integration

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

package company

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ramesh/companyemployees/tests/integration/testutils"

	"github.com/stretchr/testify/suite"
)

type CompanyAPITestSuite struct {
	suite.Suite
}

func TestCompanyAPITestSuite(t *testing.T) {
	suite.Run(t, new(CompanyAPITestSuite))
}

func (suite *CompanyAPITestSuite) TestGetCompany() {
	resp, err := testutils.DoRequest(http.MethodGet, "/api/companies/"+testutils.ITSolutionsCompanyID, "", nil)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("application/json", resp.Header.Get("Content-Type"))

	var company testutils.Company
	suite.Require().NoError(json.Unmarshal(resp.Body, &company))
	suite.Equal(testutils.ITSolutionsCompanyID, company.ID)
	suite.Equal("IT_Solutions Ltd", company.Name)
	suite.Equal("USA", company.Country)
}

func (suite *CompanyAPITestSuite) TestGetCompanyAsXML() {
	resp, err := testutils.DoRequest(http.MethodGet, "/api/companies/"+testutils.AdminSolutionsCompanyID,
		"application/xml", nil)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.True(strings.Contains(string(resp.Body), "<Name>Admin_Solutions Ltd</Name>"))
}

func (suite *CompanyAPITestSuite) TestGetCompanyNotFound() {
	resp, err := testutils.DoRequest(http.MethodGet, "/api/companies/00000000-0000-4000-8000-000000000000",
		"", nil)
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, resp.StatusCode)

	var errResp testutils.ErrorResponse
	suite.Require().NoError(json.Unmarshal(resp.Body, &errResp))
	suite.Equal("COM-1001", errResp.Code)
}

func (suite *CompanyAPITestSuite) TestGetCompanyInvalidID() {
	resp, err := testutils.DoRequest(http.MethodGet, "/api/companies/not-a-uuid", "", nil)
	suite.Require().NoError(err)
	suite.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (suite *CompanyAPITestSuite) TestGetCompanyNotAcceptable() {
	resp, err := testutils.DoRequest(http.MethodGet, "/api/companies/"+testutils.ITSolutionsCompanyID,
		"text/csv", nil)
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotAcceptable, resp.StatusCode)
}
