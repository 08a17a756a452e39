/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
)

// This is taken from Kubernetes' controller-runtime/log package: a logger
// that can be used before SetLogger is ever called, and later "fulfilled"
// once a real sink is installed, without having to thread a *logr.Logger
// through every constructor in the package.
func SetLogger(l logr.Logger) {
	rootLog.Fulfill(l.GetSink())
}

// FromContext returns the logger stored in ctx by IntoContext, or the
// package-level root logger if ctx carries none.
func FromContext(ctx context.Context, keysAndValues ...interface{}) logr.Logger {
	log := Log
	if ctx != nil {
		if logger, err := logr.FromContext(ctx); err == nil {
			log = logger
		}
	}
	return log.WithValues(keysAndValues...)
}

func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

var (
	rootLog = newDelegatingLogSink(nullLogSink{})
	Log     = logr.New(rootLog)
)

type nullLogSink struct{}

var _ logr.LogSink = nullLogSink{}

func (nullLogSink) Init(logr.RuntimeInfo) {}

func (nullLogSink) Info(_ int, _ string, _ ...interface{}) {}

func (nullLogSink) Error(_ error, _ string, _ ...interface{}) {}

func (nullLogSink) Enabled(_ int) bool {
	return false
}

func (log nullLogSink) WithName(_ string) logr.LogSink {
	return log
}

func (log nullLogSink) WithValues(_ ...interface{}) logr.LogSink {
	return log
}

// loggerPromise is an unfulfilled WithName/WithValues call, queued against a
// delegatingLogSink until SetLogger supplies a real sink to apply it to.
type loggerPromise struct {
	logger        *delegatingLogSink
	childPromises []*loggerPromise
	promisesLock  sync.Mutex

	name *string
	tags []interface{}
}

func (p *loggerPromise) child(l *delegatingLogSink) *loggerPromise {
	res := &loggerPromise{logger: l}

	p.promisesLock.Lock()
	defer p.promisesLock.Unlock()
	p.childPromises = append(p.childPromises, res)
	return res
}

func (p *loggerPromise) WithName(l *delegatingLogSink, name string) *loggerPromise {
	res := p.child(l)
	res.name = &name
	return res
}

func (p *loggerPromise) WithValues(l *delegatingLogSink, tags ...interface{}) *loggerPromise {
	res := p.child(l)
	res.tags = tags
	return res
}

func (p *loggerPromise) Fulfill(parentLogSink logr.LogSink) {
	sink := parentLogSink
	if p.name != nil {
		sink = sink.WithName(*p.name)
	}
	if p.tags != nil {
		sink = sink.WithValues(p.tags...)
	}

	p.logger.lock.Lock()
	p.logger.logger = sink
	if withCallDepth, ok := sink.(logr.CallDepthLogSink); ok {
		p.logger.logger = withCallDepth.WithCallDepth(1)
	}
	p.logger.promise = nil
	p.logger.lock.Unlock()

	for _, childPromise := range p.childPromises {
		childPromise.Fulfill(sink)
	}
}

type delegatingLogSink struct {
	lock    sync.RWMutex
	logger  logr.LogSink
	promise *loggerPromise
	info    logr.RuntimeInfo
}

func (l *delegatingLogSink) Init(info logr.RuntimeInfo) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.info = info
}

func (l *delegatingLogSink) Enabled(level int) bool {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.logger.Enabled(level)
}

func (l *delegatingLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	l.logger.Info(level, msg, keysAndValues...)
}

func (l *delegatingLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	l.logger.Error(err, msg, keysAndValues...)
}

// deriveSink resolves either an already-fulfilled child sink (via apply) or,
// while no real sink is installed yet, a new delegatingLogSink carrying a
// queued promise (via queue) that later gets fulfilled in one shot.
func (l *delegatingLogSink) deriveSink(apply func(logr.LogSink) logr.LogSink, queue func(*loggerPromise, *delegatingLogSink) *loggerPromise) logr.LogSink {
	l.lock.RLock()
	defer l.lock.RUnlock()

	if l.promise == nil {
		sink := apply(l.logger)
		if withCallDepth, ok := sink.(logr.CallDepthLogSink); ok {
			sink = withCallDepth.WithCallDepth(-1)
		}
		return sink
	}

	res := &delegatingLogSink{logger: l.logger}
	res.promise = queue(l.promise, res)
	return res
}

func (l *delegatingLogSink) WithName(name string) logr.LogSink {
	return l.deriveSink(
		func(sink logr.LogSink) logr.LogSink { return sink.WithName(name) },
		func(p *loggerPromise, res *delegatingLogSink) *loggerPromise { return p.WithName(res, name) },
	)
}

func (l *delegatingLogSink) WithValues(tags ...interface{}) logr.LogSink {
	return l.deriveSink(
		func(sink logr.LogSink) logr.LogSink { return sink.WithValues(tags...) },
		func(p *loggerPromise, res *delegatingLogSink) *loggerPromise { return p.WithValues(res, tags...) },
	)
}

func (l *delegatingLogSink) Fulfill(actual logr.LogSink) {
	if actual == nil {
		actual = nullLogSink{}
	}
	if l.promise != nil {
		l.promise.Fulfill(actual)
	}
}

func newDelegatingLogSink(initial logr.LogSink) *delegatingLogSink {
	l := &delegatingLogSink{
		logger:  initial,
		promise: &loggerPromise{promisesLock: sync.Mutex{}},
	}
	l.promise.logger = l
	return l
}
