package testcases

// Shapes contains all fill fixtures.
var Shapes = append(append([]Shape{}, fillCases...), ctmCases...)

// Lines contains all stroke fixtures.
var Lines = lineCases
