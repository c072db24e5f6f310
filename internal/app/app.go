package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/app"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/checkout-strategy/internal/domain/payment"
	"github.com/xenking/checkout-strategy/internal/domain/wallet"
	"github.com/xenking/checkout-strategy/internal/gateway"
	"github.com/xenking/checkout-strategy/pkg/rational"
	"github.com/xenking/checkout-strategy/pkg/shape"
)

// Run creates all dependencies and executes the fixed demonstration sequence.
// It is the single wiring point for the application. The unbound-gateway step
// is an expected outcome of the sequence, so Run only fails on configuration
// problems and otherwise returns nil.
func Run(ctx context.Context, lg *zap.Logger, m *app.Metrics, cfg *Config) error {
	initial, err := gateway.ByName(cfg.Gateway)
	if err != nil {
		return errors.Wrapf(err, "initial gateway (have: %s)", strings.Join(gateway.Names(), ", "))
	}
	next, err := gateway.ByName(cfg.SwitchTo)
	if err != nil {
		return errors.Wrapf(err, "switch-to gateway (have: %s)", strings.Join(gateway.Names(), ", "))
	}

	amounts, err := cfg.Amounts.parse()
	if err != nil {
		return err
	}

	meter := m.MeterProvider().Meter("checkout-demo")
	payments, err := meter.Int64Counter("payments_initiated_total",
		metric.WithDescription("Payments initiated through any gateway"))
	if err != nil {
		return errors.Wrap(err, "create payments counter")
	}

	lg.Info("Starting demo",
		zap.String("gateway", initial.Name()),
		zap.String("switch_to", next.Name()),
	)

	out := io.Writer(os.Stdout)
	runCheckout(ctx, out, lg, payments, initial, next, amounts)
	runWallet(out)
	runRational(out)
	runShapes(out)

	return nil
}

// runCheckout walks the strategy scenario: charge through the initial gateway,
// swap gateways mid-flight, then attempt a checkout with no gateway bound.
func runCheckout(
	ctx context.Context,
	out io.Writer,
	lg *zap.Logger,
	payments metric.Int64Counter,
	initial, next payment.Gateway,
	amounts demoAmounts,
) {
	fmt.Fprintln(out, "=== Checkout (pluggable payment gateways) ===")

	svc := payment.NewService(initial, lg.Named("checkout"))
	receipts := make([]payment.Confirmation, 0, 2)

	charge := func(amount decimal.Decimal) {
		if g := svc.Gateway(); g != nil {
			fmt.Fprintf(out, "Using %s...\n", g.Name())
		}
		conf := svc.Checkout(amount)
		if conf == nil {
			fmt.Fprintln(out, "No payment gateway configured!")
			return
		}
		payments.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", conf.Provider)))
		receipts = append(receipts, *conf)
		fmt.Fprintln(out, conf.Message)
	}

	charge(amounts.first)
	svc.SetGateway(next)
	charge(amounts.second)
	svc.SetGateway(nil)
	charge(amounts.unbound)

	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for i := range receipts {
			receipts[i].Encode(e)
		}
	})
	lg.Info("Demo receipts", zap.String("json", e.String()))
}

func runWallet(out io.Writer) {
	fmt.Fprintln(out, "=== Wallet (coin denominations) ===")

	var w wallet.Wallet
	w.Add(wallet.Dime)
	w.Add(wallet.Quarter)

	fmt.Fprintf(out, "%s value = %d\n", wallet.Dime, wallet.Dime.Value())
	fmt.Fprintf(out, "Wallet total (cents): %d\n", w.Total())
	fmt.Fprintf(out, "Wallet total: $%s\n", w.TotalAmount().StringFixed(2))
}

func runRational(out io.Writer) {
	fmt.Fprintln(out, "=== Rational arithmetic ===")

	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)

	fmt.Fprintf(out, "%s + %s = %s\n", half, third, half.Add(third))
	fmt.Fprintf(out, "%s - %s = %s\n", half, third, half.Sub(third))
	fmt.Fprintf(out, "%s * %s = %s (%s)\n",
		half, third, half.Mul(third), half.Mul(third).Decimal().StringFixed(4))
}

func runShapes(out io.Writer) {
	fmt.Fprintln(out, "=== Shapes (small interfaces) ===")

	tri := shape.NewShape("Triangle")
	tri.Move(10, 20)
	tri.Resize(1.5)

	for _, line := range shape.Render([]shape.Drawable{shape.Circle{}, shape.Rectangle{}, tri}) {
		fmt.Fprintln(out, line)
	}

	doc := shape.Document{Content: "Hello, World!"}
	fmt.Fprintln(out, doc.Print())
	fmt.Fprintln(out, "Serialized:", doc.Serialize())
}
