// Package plot renders sweep tables as terminal charts and PNG images.
//
// Line panels (time, transfer, dual) plot a fixed set of columns against the
// table's x axis. Constellation panels are drawn as an Re/Im scatter.
package plot
