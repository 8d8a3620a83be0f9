// SPDX-License-Identifier: MIT

package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reelmate_chat_connected",
		Help: "1 while a live chat connection exists, 0 otherwise",
	})

	reconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reelmate_chat_reconnects_total",
		Help: "Number of successful reconnections after a dropped connection",
	})

	messagesReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelmate_chat_messages_received_total",
		Help: "Number of chat messages applied to the local log",
	}, []string{"mode"})

	payloadsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reelmate_chat_payloads_dropped_total",
		Help: "Number of malformed inbound payloads dropped",
	})

	messagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reelmate_chat_messages_sent_total",
		Help: "Number of chat frames transmitted",
	})

	sendsSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reelmate_chat_sends_suppressed_total",
		Help: "Number of sends absorbed by the debounce window",
	})
)

func recordState(s State) {
	if s == StateConnected {
		connectedGauge.Set(1)
	} else {
		connectedGauge.Set(0)
	}
}

func recordReconnect() { reconnectsTotal.Inc() }

func recordReceived(count int, replace bool) {
	mode := "append"
	if replace {
		mode = "replace"
	}
	messagesReceivedTotal.WithLabelValues(mode).Add(float64(count))
}

func recordDropped() { payloadsDroppedTotal.Inc() }

func recordSent() { messagesSentTotal.Inc() }

func recordSendSuppressed() { sendsSuppressedTotal.Inc() }
