package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for the names this codebase logs most

func Component(name string) Field {
	return String("component", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Person(name string) Field {
	return String("person", name)
}

func People(n int) Field {
	return Int("people", n)
}

func Worlds(n uint64) Field {
	return Uint64("worlds", n)
}

func Workers(n int) Field {
	return Int("workers", n)
}

func Path(p string) Field {
	return String("path", p)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
