package datarecording

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/fatih/structs"
	"github.com/tebeka/atexit"
)

// ClickHouseConfig carries the connection parameters of a ClickHouse server.
type ClickHouseConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

// NewClickHouseRecorder creates a DataRecorder that writes to a ClickHouse
// server. It serves long-running simulations whose traces outgrow a local
// SQLite file. A batchSize of 0 uses the default.
func NewClickHouseRecorder(
	config ClickHouseConfig,
	batchSize int,
) DataRecorder {
	if batchSize == 0 {
		batchSize = 100000
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", config.Host, config.Port)},
		Auth: clickhouse.Auth{
			Database: config.Database,
			Username: config.Username,
			Password: config.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout: time.Second * 30,
	})
	if err != nil {
		panic(fmt.Errorf("failed to connect to ClickHouse: %w", err))
	}

	if err := conn.Ping(context.Background()); err != nil {
		panic(fmt.Errorf("failed to ping ClickHouse: %w", err))
	}

	w := &clickHouseWriter{
		conn:      conn,
		batchSize: batchSize,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// clickHouseWriter is the writer that writes data into a ClickHouse database.
type clickHouseWriter struct {
	conn clickhouse.Conn

	tables     map[string]*table
	batchSize  int
	entryCount int
}

func (w *clickHouseWriter) CreateTable(tableName string, sampleEntry any) {
	err := checkStructFields(sampleEntry)
	if err != nil {
		panic(err)
	}

	createSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s
		) ENGINE = MergeTree()
		ORDER BY tuple()
	`, tableName, clickHouseColumns(sampleEntry))

	err = w.conn.Exec(context.Background(), createSQL)
	if err != nil {
		panic(fmt.Errorf("failed to create table %s: %w", tableName, err))
	}

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

func (w *clickHouseWriter) InsertData(tableName string, entry any) {
	table, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	table.entries = append(table.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

func (w *clickHouseWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	return tables
}

func (w *clickHouseWriter) Flush() {
	if w.entryCount == 0 {
		return
	}

	ctx := context.Background()

	for tableName, table := range w.tables {
		if len(table.entries) == 0 {
			continue
		}

		batch, err := w.conn.PrepareBatch(ctx,
			fmt.Sprintf("INSERT INTO %s", tableName))
		if err != nil {
			panic(err)
		}

		for _, entry := range table.entries {
			err = batch.Append(fieldValues(entry)...)
			if err != nil {
				panic(err)
			}
		}

		err = batch.Send()
		if err != nil {
			panic(err)
		}

		table.entries = nil
	}

	w.entryCount = 0
}

func (w *clickHouseWriter) Close() {
	w.Flush()

	err := w.conn.Close()
	if err != nil {
		panic(err)
	}
}

func clickHouseColumns(sampleEntry any) string {
	names := structs.Names(sampleEntry)
	t := reflect.TypeOf(sampleEntry)

	columns := make([]string, 0, len(names))
	for i, name := range names {
		columns = append(columns,
			name+" "+clickHouseType(t.Field(i).Type.Kind()))
	}

	return strings.Join(columns, ",\n\t\t\t")
}

func clickHouseType(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "Bool"
	case reflect.Int, reflect.Int64:
		return "Int64"
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return "Int32"
	case reflect.Uint, reflect.Uint64:
		return "UInt64"
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "UInt32"
	case reflect.Float32, reflect.Float64:
		return "Float64"
	case reflect.String:
		return "String"
	default:
		panic(fmt.Sprintf("kind %s not supported", kind))
	}
}
