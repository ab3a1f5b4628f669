// Package company models buyer companies and their verification workflow.
package company
