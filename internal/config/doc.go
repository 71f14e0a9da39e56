// Package config provides configuration for the attendance batch run.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later ones winning:
//
//	1. Default values (Default), which reproduce the fixed export/template layout
//	2. An optional YAML file (attendance.yaml or configs/attendance.yaml)
//	3. Environment variables prefixed with ATTENDANCE_
//
// # Environment Variables
//
//	ATTENDANCE_FILES_SOURCE=DATA.xlsx
//	ATTENDANCE_FILES_TEMPLATE=taslak.xlsx
//	ATTENDANCE_FILES_OUTPUT_DIR=reports
//	ATTENDANCE_LOGGING_LEVEL=debug
//	ATTENDANCE_FILTER_EXCLUDED_KEYWORDS=toplam,günlük,personel
//	ATTENDANCE_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Layout Tables
//
// SourceLayout and TemplateLayout are the only place where row and column
// positions live. Both files are addressed positionally; a layout change in
// the payroll export or the template is an edit to constants.go (or a config
// override), never to the pipeline code.
//
// # Validation
//
// Validate runs go-playground/validator over the struct tags. Template
// columns and cells are checked with excelize's own reference parsers.
package config
