package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{10, 50, 100})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{10, 50, 100}),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level recorders", t, func() {
		Convey("Then each recorder runs without panicking", func() {
			So(func() { RecordValidationFailure("heartRate") }, ShouldNotPanic)
			So(func() { RecordClassification("heartRate", "high") }, ShouldNotPanic)
			So(func() { RecordWindowRecompute() }, ShouldNotPanic)
			So(func() { UpdateWindowRows(20) }, ShouldNotPanic)
			So(func() { UpdateSelectionSize(3) }, ShouldNotPanic)
			So(func() { RecordLookupDispatched() }, ShouldNotPanic)
			So(func() { RecordLookupSuperseded() }, ShouldNotPanic)
			So(func() { RecordLookupEmpty() }, ShouldNotPanic)
			So(func() { RecordLookupError() }, ShouldNotPanic)
			So(func() { RecordLookupLatency(12.5) }, ShouldNotPanic)
		})

		Convey("Then the registry is exposed for scraping", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
