package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pelos handlers e middlewares
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
}

const (
	correlationIDField = "correlation_id"
	tenantIDField      = "tenant_id"
	userIDField        = "user_id"
)

// Campos de requisição omitidos em desenvolvimento
var verboseFields = map[string]bool{
	"remote_addr":    true,
	"user_agent":     true,
	"referer":        true,
	"query":          true,
	"content_length": true,
}

type scopeKey struct{}

// requestScope acompanha a requisição pelo contexto; o tenant só é conhecido depois da autenticação
type requestScope struct {
	correlationID string
	tenantID      string
	userID        int
}

type logger struct {
	entry *logrus.Entry
	dev   bool
}

// L é o logger global, sem dados de requisição
var L Logger = newLogger(logrus.StandardLogger())

func newLogger(base *logrus.Logger) *logger {
	return &logger{entry: logrus.NewEntry(base), dev: IsDevelopment()}
}

// IsDevelopment é verdadeiro quando APP_ENV está vazio ou indica desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// UseLogger troca a base do logger global; usado nos testes com o hook do logrus
func UseLogger(base *logrus.Logger) {
	L = newLogger(base)
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if l.dev && verboseFields[key] {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value), dev: l.dev}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if l.dev && verboseFields[k] {
			continue
		}
		kept[k] = v
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept), dev: l.dev}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err), dev: l.dev}
}

func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }

func (l *logger) Info(args ...interface{}) { l.entry.Info(args...) }

func (l *logger) Warn(args ...interface{}) { l.entry.Warn(args...) }

func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }

func scopeFrom(ctx context.Context) requestScope {
	if ctx == nil {
		return requestScope{}
	}
	scope, _ := ctx.Value(scopeKey{}).(requestScope)
	return scope
}

// WithCorrelationID guarda o id de correlação no contexto. Um id recebido que não seja UUID é substituído.
func WithCorrelationID(ctx context.Context, received string) (context.Context, string) {
	correlationID := received
	if _, err := uuid.Parse(received); err != nil {
		correlationID = uuid.New().String()
	}

	scope := scopeFrom(ctx)
	scope.correlationID = correlationID
	return context.WithValue(ctx, scopeKey{}, scope), correlationID
}

// WithUser anexa o tenant e o usuário autenticado ao contexto da requisição
func WithUser(ctx context.Context, tenantID string, userID int) context.Context {
	scope := scopeFrom(ctx)
	scope.tenantID = tenantID
	scope.userID = userID
	return context.WithValue(ctx, scopeKey{}, scope)
}

func GetCorrelationID(ctx context.Context) string {
	return scopeFrom(ctx).correlationID
}

// ForContext devolve o logger global com os dados de requisição presentes no contexto
func ForContext(ctx context.Context) Logger {
	scope := scopeFrom(ctx)

	fields := Fields{}
	if scope.correlationID != "" {
		fields[correlationIDField] = scope.correlationID
	}
	if scope.tenantID != "" {
		fields[tenantIDField] = scope.tenantID
		fields[userIDField] = scope.userID
	}

	return L.WithFields(fields)
}
