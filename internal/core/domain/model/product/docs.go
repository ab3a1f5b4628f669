// Package product models the sourcing catalog.
//
// Each product carries up to five product images and five measurement spec
// images hosted on the media service, and a list of free-form attribute groups.
package product
