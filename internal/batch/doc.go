// Package batch runs the page table against the scanned pages.
//
// Runner.Run walks pages in ascending order, loads each page image once and
// crops every configured product from it. Failures are isolated per product:
// an error or panic while cropping or saving one product is recorded in the
// Report and the run moves on to the next product. A page whose image file is
// missing is skipped with a warning and its products are not reported as
// failures. Only problems that stop any output from being written, such as an
// uncreatable output directory, end the run early.
//
// The run itself is sequential. Runner.RenderOverlays, which only reads
// pages, renders calibration sheets concurrently.
package batch
