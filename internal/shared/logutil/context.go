package logutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

type Context map[string]interface{}

// With returns a copy of lctx extended by key=value.
func (lctx Context) With(key string, value interface{}) Context {
	ret := Context{}
	for k, v := range lctx {
		ret[k] = v
	}
	ret[key] = value
	return ret
}

func WrapLogWithContext(log Log, lctx Context) Log {
	return contextLog{
		lctx: lctx,
		log:  log,
	}
}

type contextLog struct {
	lctx Context
	log  Log
}

func (cl contextLog) wrapFormat(format string) string {
	keys := make([]string, 0, len(cl.lctx))
	for k := range cl.lctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		// values are escaped: they can contain user supplied '%'
		v := strings.Replace(fmt.Sprint(cl.lctx[k]), "%", "%%", -1)
		pairs = append(pairs, fmt.Sprintf("%s=%s", color.YellowString(k), v))
	}

	ctx := strings.Join(pairs, " ")
	if ctx != "" {
		ctx = " [" + ctx + "]"
	}
	return format + ctx
}

func (cl contextLog) Fatalf(format string, args ...interface{}) {
	cl.log.Fatalf(cl.wrapFormat(format), args...)
}

func (cl contextLog) Errorf(format string, args ...interface{}) {
	cl.log.Errorf(cl.wrapFormat(format), args...)
}

func (cl contextLog) Warnf(format string, args ...interface{}) {
	cl.log.Warnf(cl.wrapFormat(format), args...)
}

func (cl contextLog) Infof(format string, args ...interface{}) {
	cl.log.Infof(cl.wrapFormat(format), args...)
}

func (cl contextLog) Debugf(key string, format string, args ...interface{}) {
	cl.log.Debugf(key, cl.wrapFormat(format), args...)
}

func (cl contextLog) Child(name string) Log {
	return WrapLogWithContext(cl.log.Child(name), cl.lctx)
}

func (cl contextLog) SetLevel(level LogLevel) {
	cl.log.SetLevel(level)
}
