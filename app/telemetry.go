package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	serviceName = "drip-settlement"
)

// TelemetryMiddleware records chain-level metrics through OpenTelemetry.
// The provider itself lives in app/telemetry; this middleware owns the
// instruments the application updates while processing blocks.
type TelemetryMiddleware struct {
	meter metric.Meter

	// Metrics
	txCounter       metric.Int64Counter
	txDuration      metric.Float64Histogram
	txGasUsed       metric.Int64Histogram
	blockHeight     metric.Int64Gauge
	moduleExec      metric.Float64Histogram
	sessionsSettled metric.Int64Counter
	feesRouted      metric.Int64Counter
	disputesOpened  metric.Int64Counter
}

// NewTelemetryMiddleware creates a new telemetry middleware
func NewTelemetryMiddleware(meter metric.Meter) (*TelemetryMiddleware, error) {
	txCounter, err := meter.Int64Counter(
		"cosmos.tx.total",
		metric.WithDescription("Total number of transactions"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, err
	}

	txDuration, err := meter.Float64Histogram(
		"cosmos.tx.processing_time",
		metric.WithDescription("Transaction processing time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	txGasUsed, err := meter.Int64Histogram(
		"cosmos.tx.gas_used",
		metric.WithDescription("Gas used by transaction"),
		metric.WithUnit("{gas}"),
	)
	if err != nil {
		return nil, err
	}

	blockHeight, err := meter.Int64Gauge(
		"cosmos.block.height",
		metric.WithDescription("Current block height"),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, err
	}

	moduleExec, err := meter.Float64Histogram(
		"cosmos.module.execution_time",
		metric.WithDescription("Module execution time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	sessionsSettled, err := meter.Int64Counter(
		"drip.escrow.sessions_settled",
		metric.WithDescription("Total number of settled compute sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, err
	}

	feesRouted, err := meter.Int64Counter(
		"drip.feerouter.fees_routed",
		metric.WithDescription("Cumulative protocol fees routed, in udrip"),
		metric.WithUnit("{udrip}"),
	)
	if err != nil {
		return nil, err
	}

	disputesOpened, err := meter.Int64Counter(
		"drip.bonding.disputes_opened",
		metric.WithDescription("Total number of fraud disputes opened"),
		metric.WithUnit("{dispute}"),
	)
	if err != nil {
		return nil, err
	}

	return &TelemetryMiddleware{
		meter:           meter,
		txCounter:       txCounter,
		txDuration:      txDuration,
		txGasUsed:       txGasUsed,
		blockHeight:     blockHeight,
		moduleExec:      moduleExec,
		sessionsSettled: sessionsSettled,
		feesRouted:      feesRouted,
		disputesOpened:  disputesOpened,
	}, nil
}

// RecordTransaction records transaction metrics
func (tm *TelemetryMiddleware) RecordTransaction(
	ctx context.Context,
	txType string,
	duration time.Duration,
	gasUsed int64,
	success bool,
) {
	status := "success"
	if !success {
		status = "failed"
	}

	attrs := []attribute.KeyValue{
		attribute.String("tx.type", txType),
		attribute.String("tx.status", status),
	}

	tm.txCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	tm.txDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	tm.txGasUsed.Record(ctx, gasUsed, metric.WithAttributes(attrs...))
}

// RecordBlockHeight records the current block height
func (tm *TelemetryMiddleware) RecordBlockHeight(ctx context.Context, height int64) {
	tm.blockHeight.Record(ctx, height)
}

// RecordModuleExecution records module execution time
func (tm *TelemetryMiddleware) RecordModuleExecution(
	ctx context.Context,
	moduleName string,
	duration time.Duration,
) {
	attrs := []attribute.KeyValue{
		attribute.String("module.name", moduleName),
	}
	tm.moduleExec.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordSessionSettled records a completed settlement with its routed fee.
func (tm *TelemetryMiddleware) RecordSessionSettled(ctx context.Context, scheme string, feeAmount int64) {
	attrs := []attribute.KeyValue{
		attribute.String("verifier.scheme", scheme),
	}
	tm.sessionsSettled.Add(ctx, 1, metric.WithAttributes(attrs...))
	tm.feesRouted.Add(ctx, feeAmount, metric.WithAttributes(attrs...))
}

// RecordDisputeOpened records a new fraud dispute.
func (tm *TelemetryMiddleware) RecordDisputeOpened(ctx context.Context) {
	tm.disputesOpened.Add(ctx, 1)
}

// TraceTxExecution creates a traced context for transaction execution
func TraceTxExecution(ctx context.Context, tx sdk.Tx, height int64) (context.Context, func()) {
	tracer := otel.Tracer(serviceName)
	ctx, span := tracer.Start(ctx, "transaction.execute")

	span.SetAttributes(
		attribute.Int64("block.height", height),
		attribute.Int("tx.msg.count", len(tx.GetMsgs())),
	)

	return ctx, func() { span.End() }
}

// TraceModuleExecution creates a traced context for module execution
func TraceModuleExecution(ctx context.Context, moduleName string) (context.Context, func()) {
	tracer := otel.Tracer(serviceName)
	ctx, span := tracer.Start(ctx, "module.execute")
	span.SetAttributes(attribute.String("module.name", moduleName))
	return ctx, func() { span.End() }
}
