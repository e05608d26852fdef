// Package export renders audit logs as CSV, JSON, SQL or XLSX documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/tealeg/xlsx"
	"google.golang.org/grpc/codes"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/wire"
)

// Columns are the exported audit log fields, in order.
var Columns = []string{"name", "create_time", "user", "method", "severity", "resource", "request", "response", "status", "latency"}

// TableName is the table the SQL format inserts into.
const TableName = "audit_log"

func row(log *v1pb.AuditLog) []string {
	createTime := ""
	if log.CreateTime != nil {
		createTime = log.CreateTime.AsTime().UTC().Format(time.RFC3339Nano)
	}
	statusText := ""
	if log.Status != nil {
		statusText = codes.Code(log.Status.Code).String()
		if log.Status.Message != "" {
			statusText += ": " + log.Status.Message
		}
	}
	latency := ""
	if log.Latency != nil {
		latency = log.Latency.AsDuration().String()
	}
	return []string{
		log.Name,
		createTime,
		log.User,
		log.Method,
		log.Severity.String(),
		log.Resource,
		log.Request,
		log.Response,
		statusText,
		latency,
	}
}

// AuditLogs encodes logs in format.
func AuditLogs(format v1pb.ExportFormat, logs []*v1pb.AuditLog) ([]byte, error) {
	switch format {
	case v1pb.ExportFormat_CSV:
		return CSV(logs)
	case v1pb.ExportFormat_JSON:
		return JSON(logs)
	case v1pb.ExportFormat_SQL:
		return SQL(logs), nil
	case v1pb.ExportFormat_XLSX:
		return XLSX(logs)
	}
	return nil, fmt.Errorf("unsupported export format %s", format)
}

func CSV(logs []*v1pb.AuditLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for _, log := range logs {
		if err := w.Write(row(log)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON writes a JSON array of the logs in their API JSON form.
func JSON(logs []*v1pb.AuditLog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, log := range logs {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := wire.MarshalJSON(log)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", log.Name, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// SQL writes one INSERT statement per log.
func SQL(logs []*v1pb.AuditLog) []byte {
	var buf bytes.Buffer
	cols := "`" + strings.Join(Columns, "`, `") + "`"
	for _, log := range logs {
		values := row(log)
		for i, v := range values {
			values[i] = quote(v)
		}
		fmt.Fprintf(&buf, "INSERT INTO `%s` (%s) VALUES (%s);\n", TableName, cols, strings.Join(values, ", "))
	}
	return buf.Bytes()
}

var sqlEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`, "\n", `\n`, "\r", `\r`, "\x00", `\0`)

func quote(s string) string {
	return "'" + sqlEscaper.Replace(s) + "'"
}

func XLSX(logs []*v1pb.AuditLog) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Audit logs")
	if err != nil {
		return nil, err
	}
	header := sheet.AddRow()
	for _, c := range Columns {
		header.AddCell().SetString(c)
	}
	for _, log := range logs {
		r := sheet.AddRow()
		for _, v := range row(log) {
			r.AddCell().SetString(v)
		}
	}
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
