// Package pdf reads textbook PDFs. Inspect validates uploads and counts their
// pages with pdfcpu; Store opens stored PDFs for page-by-page text extraction
// with ledongthuc/pdf.
package pdf
