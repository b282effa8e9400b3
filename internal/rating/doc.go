// Package rating implements the star rating picker: settings resolution,
// rendering of the icon row, the widget lifecycle bound to a host Element,
// the mapping of icon activations to values, and event emission.
//
// A widget is bound 1:1 to an Element. Init converts the element's numeric
// text into a row of icons, Update changes the selected value, and Destroy
// writes the plain numeral back. Every operation runs to completion
// synchronously; observers of the ready and changed events always see the
// element already rendered for the new value.
package rating
