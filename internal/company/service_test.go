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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testCompanyID = "c9d4c053-49b6-410c-bc78-2d54a9991870"

type CompanyServiceTestSuite struct {
	suite.Suite
	mockStore *companyStoreInterfaceMock
	service   *companyService
}

func TestCompanyServiceSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockStore = &companyStoreInterfaceMock{}
	suite.service = &companyService{companyStore: suite.mockStore}
}

func (suite *CompanyServiceTestSuite) TestGetCompany_Success() {
	expected := Company{ID: testCompanyID, Name: "IT_Solutions Ltd", Address: "583 Wall Dr. Gwynn Oak, MD 21207",
		Country: "USA"}
	suite.mockStore.On("GetCompany", mock.Anything, testCompanyID).Return(expected, nil)

	company, svcErr := suite.service.GetCompany(context.Background(), testCompanyID)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), expected, company)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestGetCompany_InvalidID() {
	_, svcErr := suite.service.GetCompany(context.Background(), "not-a-uuid")

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidCompanyID.Code, svcErr.Code)
	suite.mockStore.AssertNotCalled(suite.T(), "GetCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_NotFound() {
	suite.mockStore.On("GetCompany", mock.Anything, testCompanyID).Return(Company{}, ErrCompanyNotFound)

	_, svcErr := suite.service.GetCompany(context.Background(), testCompanyID)

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorCompanyNotFound.Code, svcErr.Code)
	assert.Contains(suite.T(), svcErr.ErrorDescription, testCompanyID)
	assert.NotEqual(suite.T(), ErrorCompanyNotFound.ErrorDescription, svcErr.ErrorDescription)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_StoreError() {
	suite.mockStore.On("GetCompany", mock.Anything, testCompanyID).
		Return(Company{}, errors.New("connection reset"))

	_, svcErr := suite.service.GetCompany(context.Background(), testCompanyID)

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestIsCompanyExists() {
	suite.mockStore.On("IsCompanyExists", mock.Anything, testCompanyID).Return(true, nil).Once()

	exists, svcErr := suite.service.IsCompanyExists(context.Background(), testCompanyID)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), exists)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestIsCompanyExists_InvalidID() {
	exists, svcErr := suite.service.IsCompanyExists(context.Background(), "1234")

	assert.False(suite.T(), exists)
	assert.Equal(suite.T(), ErrorInvalidCompanyID.Code, svcErr.Code)
	suite.mockStore.AssertNotCalled(suite.T(), "IsCompanyExists", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestIsCompanyExists_StoreError() {
	suite.mockStore.On("IsCompanyExists", mock.Anything, testCompanyID).Return(false, errors.New("timeout"))

	exists, svcErr := suite.service.IsCompanyExists(context.Background(), testCompanyID)

	assert.False(suite.T(), exists)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}
