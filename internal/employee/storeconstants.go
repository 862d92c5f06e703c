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

package employee

import (
	"github.com/ramesh/companyemployees/internal/system/database/model"
	dbutils "github.com/ramesh/companyemployees/internal/system/database/utils"
	"github.com/ramesh/companyemployees/internal/system/query"
)

const (
	employeeTable = "EMPLOYEE"

	queryIDCountEmployees = "EMQ-EMP_MGT-01"
	queryIDListEmployees  = "EMQ-EMP_MGT-02"
)

// employeeColumns are the columns read for an employee row.
var employeeColumns = []string{"EMPLOYEE_ID", "COMPANY_ID", "NAME", "AGE", "POSITION"}

// employeeSortColumns maps sortable fields to their columns.
var employeeSortColumns = map[string]string{
	"ID":       "EMPLOYEE_ID",
	"Name":     "NAME",
	"Age":      "AGE",
	"Position": "POSITION",
}

// employeeSortFields are the fields accepted in the orderBy parameter.
var employeeSortFields = query.FieldSetFor[EmployeeDTO]()

// employeeFallbackSort makes the order of employees deterministic.
var employeeFallbackSort = query.SortSpec{{Field: "Name"}, {Field: "ID"}}

var (
	// queryGetEmployeeByID is the query to get an employee of a company by id.
	queryGetEmployeeByID = dbutils.PortableQuery("EMQ-EMP_MGT-03",
		`SELECT EMPLOYEE_ID, COMPANY_ID, NAME, AGE, POSITION FROM EMPLOYEE WHERE COMPANY_ID = ? AND EMPLOYEE_ID = ?`)

	// queryCreateEmployee is the query to create a new employee.
	queryCreateEmployee = dbutils.PortableQuery("EMQ-EMP_MGT-04",
		`INSERT INTO EMPLOYEE (EMPLOYEE_ID, COMPANY_ID, NAME, SEARCH_NAME, AGE, POSITION) VALUES (?, ?, ?, ?, ?, ?)`)

	// queryGetEmployeeForUpdate reads an employee of a company and locks the row where the dialect supports it.
	queryGetEmployeeForUpdate = withRowLock(dbutils.PortableQuery("EMQ-EMP_MGT-07",
		`SELECT EMPLOYEE_ID, COMPANY_ID, NAME, AGE, POSITION FROM EMPLOYEE WHERE COMPANY_ID = ? AND EMPLOYEE_ID = ?`))

	// queryUpdateEmployee is the query to update an employee of a company.
	queryUpdateEmployee = dbutils.PortableQuery("EMQ-EMP_MGT-05",
		`UPDATE EMPLOYEE SET NAME = ?, SEARCH_NAME = ?, AGE = ?, POSITION = ? WHERE COMPANY_ID = ? AND EMPLOYEE_ID = ?`)

	// queryDeleteEmployee is the query to delete an employee of a company.
	queryDeleteEmployee = dbutils.PortableQuery("EMQ-EMP_MGT-06",
		`DELETE FROM EMPLOYEE WHERE COMPANY_ID = ? AND EMPLOYEE_ID = ?`)
)

// withRowLock appends a row lock to the dialects with SELECT ... FOR UPDATE. SQLite locks the database on write.
func withRowLock(q model.DBQuery) model.DBQuery {
	q.PostgresQuery += " FOR UPDATE"
	q.MySQLQuery += " FOR UPDATE"
	return q
}
