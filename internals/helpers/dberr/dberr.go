// Package dberr normalizes store-layer failures into the small set of
// user-facing outcomes the API exposes. Raw driver errors (postgres error
// codes, sqlite constraint messages, gorm sentinels) are classified into a
// closed Kind set and mapped to a stable message plus HTTP status; the
// original error never crosses the boundary.
package dberr

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	helper "github.com/lgwakano/workflow-api/internals/helpers"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindUnique
	KindForeignKey
	KindNotFoundOnDelete
	KindGeneric
)

// Postgres error codes for the constraint classes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify reduces a store error to its Kind. The sqlite message checks keep
// classification working against the in-memory test store, which has no
// pgconn error codes.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindUnique
		case pgForeignKeyViolation:
			return KindForeignKey
		}
		return KindGeneric
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFoundOnDelete
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return KindUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return KindForeignKey
	}
	return KindGeneric
}

// Normalize maps a Kind to the status code and stable message surfaced to the
// caller. subject is the human-readable noun ("customer", "job answer");
// fallback is the caller-supplied message for generic failures.
func Normalize(kind Kind, subject string, fallback string) (int, string) {
	if subject == "" {
		subject = "record"
	}

	switch kind {
	case KindUnique:
		return fiber.StatusConflict,
			fmt.Sprintf("A %s with the same details already exists.", subject)
	case KindForeignKey:
		return fiber.StatusConflict,
			fmt.Sprintf("Cannot delete the %s as it is referenced by another record.", subject)
	case KindNotFoundOnDelete:
		return fiber.StatusNotFound,
			fmt.Sprintf("The %s you are trying to delete does not exist.", subject)
	case KindGeneric:
		if fallback != "" {
			return fiber.StatusInternalServerError, fallback
		}
		return fiber.StatusInternalServerError,
			"Failed to process the request. Please verify the input data and try again."
	default:
		return fiber.StatusInternalServerError,
			"An unknown error occurred. Please contact support if the problem persists."
	}
}

// Respond logs the full failure server-side and writes the reduced message.
func Respond(c *fiber.Ctx, err error, subject string, fallback string) error {
	kind := Classify(err)
	status, message := Normalize(kind, subject, fallback)
	log.Printf("[ERROR] store failure subject=%q kind=%d detail=%v", subject, kind, err)
	return helper.Error(c, status, message)
}
