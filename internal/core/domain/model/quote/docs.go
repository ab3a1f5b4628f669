// Package quote models buyer requests for quote and their review by the admin team.
package quote
