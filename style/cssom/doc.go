/*
Package cssom provides an object model for stylesheets assembled from selectors.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Our use of it is
modest: selectors built with package selector are paired with property declarations
to form rules, and rules are collected into stylesheets, which may be rendered to
CSS text or read back from it.

CSS handling is de-coupled by introducing appropriate interfaces StyleSheet and Rule.
A concrete implementation, based on https://github.com/aymerick/douceur, may be found
in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssbuilder.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssbuilder.style")
}
