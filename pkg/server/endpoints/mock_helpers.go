package endpoints

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iqmath/iqmath-server/pkg/server"
)

// NewMockTestServer creates a server instance with a mocked database for
// unit testing. Returns the server, the sqlmock instance, and any error.
func NewMockTestServer() (*server.Server, sqlmock.Sqlmock, *sql.DB, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, nil, err
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, nil, err
	}

	s := server.NewServer(gormDB, "127.0.0.1", "0")
	RegisterAll(s)

	return s, mock, mockDB, nil
}
