// Package simfolio simulates the value of a multi-asset portfolio over a
// business-day calendar, under market-condition and stress-scenario
// overrides, and under a fixed allocation strategy.
//
// The core functionalities include:
//   - Return Series: deriving daily fractional returns from adjusted closing
//     prices, with undefined (NaN) returns where data is missing.
//   - Projection: combining per-asset returns into a single portfolio return
//     with an Allocation used exactly as supplied.
//   - Overlays: multiplying a day's return by a market condition (Bull, Bear,
//     Volatile) and a scenario impact when the day falls in their windows.
//   - Simulation: compounding the portfolio value day by day, carrying the
//     value forward over data gaps, and applying a single inflation haircut
//     and capital-gains tax on the last day.
//   - Performance Metrics: annual returns, volatility and a Sharpe-style ratio.
//
// Market data retrieval lives in package market, session state in package
// session, and presentation in packages renderer, server and cmd.
package simfolio
