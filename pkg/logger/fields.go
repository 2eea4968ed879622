package logger

import (
	"errors"
	"fmt"
	"reflect"

	"go.llib.dev/algokit/pkg/errorkit"
)

type LoggingDetail interface{ addTo(*Logger, logEntry) }

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e logEntry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

type Fields map[string]any

func (fields Fields) addTo(l *Logger, e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

// ErrField logs the error message under the "error" key.
// When the error is built on an errorkit.Error sentinel, the sentinel is logged as the error code.
func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	details := Fields{
		"message": err.Error(),
	}
	var code errorkit.Error
	if errors.As(err, &code) {
		details["code"] = code.Error()
	}
	return Field("error", details)
}

func (l *Logger) toFieldValue(val any) any {
	switch val := val.(type) {
	case logEntry:
		vs := map[string]any{}
		for k, v := range val {
			vs[l.getKeyFormatter()(k)] = l.toFieldValue(v)
		}
		return vs
	case Fields:
		le := logEntry{}
		val.addTo(l, le)
		return l.toFieldValue(le)
	case []LoggingDetail:
		le := logEntry{}
		for _, v := range val {
			v.addTo(l, le)
		}
		return l.toFieldValue(le)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case nil:
		return nil
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		vs := map[string]any{}
		for _, key := range rv.MapKeys() {
			vs[l.getKeyFormatter()(key.String())] = l.toFieldValue(rv.MapIndex(key).Interface())
		}
		return vs
	}
	return val
}

type logEntry map[string]any

func (ld logEntry) addTo(l *Logger, entry logEntry) { entry.Merge(ld) }

func (ld logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		ld[k] = v
	}
	return ld
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, logEntry) {}
