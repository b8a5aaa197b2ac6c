// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/ledgerwatch/log/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const PrometheusPath = "/debug/metrics/prometheus"

// Handler serves every registered metric in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(defaultRegistry, promhttp.HandlerOpts{})
}

// Setup starts the metrics server on address. The returned server is
// already serving, callers shut it down when done.
func Setup(address string, logger log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc(PrometheusPath, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		Handler().ServeHTTP(w, req)
	})

	srv := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failure in running metrics server", "err", err)
		}
	}()

	logger.Info("Starting metrics server", "addr", "http://"+address+PrometheusPath)
	return srv
}
