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

import dbutils "github.com/ramesh/companyemployees/internal/system/database/utils"

var (
	// queryGetCompanyByID is the query to get a company by id.
	queryGetCompanyByID = dbutils.PortableQuery("COQ-COMPANY_MGT-01",
		`SELECT COMPANY_ID, NAME, ADDRESS, COUNTRY FROM COMPANY WHERE COMPANY_ID = ?`)

	// queryCheckCompanyExists is the query to check if a company exists.
	queryCheckCompanyExists = dbutils.PortableQuery("COQ-COMPANY_MGT-02",
		`SELECT COUNT(*) AS count FROM COMPANY WHERE COMPANY_ID = ?`)
)
