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

package hateoas

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ramesh/companyemployees/internal/system/datashaping"
)

// encodeCSV writes shaped records as CSV with a header row of the record keys.
// Only unlinked payloads have a tabular form.
func encodeCSV(w io.Writer, v any) error {
	var records []datashaping.ShapedRecord
	switch payload := v.(type) {
	case RecordList:
		records = payload.Records
	case datashaping.ShapedRecord:
		records = []datashaping.ShapedRecord{payload}
	default:
		return fmt.Errorf("cannot encode %T as csv", v)
	}
	if len(records) == 0 {
		return nil
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(records[0].Keys()); err != nil {
		return err
	}
	for _, record := range records {
		fields := record.Fields()
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			row = append(row, csvValue(f.Value))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func csvValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
