// Package tabular reads delimited text into header-keyed records and
// writes records back out with a stable column order.
package tabular
