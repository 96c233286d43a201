//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

void setAccessoryPolicy(void) {
    [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
}

void bringToFront(void) {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"
import "log"

// HideDockIcon makes the app a menu-bar-only accessory (macOS only)
func HideDockIcon() {
	log.Println("Switching to accessory activation policy")
	C.setAccessoryPolicy()
}

// BringToFront activates the app so its window appears above others
func BringToFront() {
	C.bringToFront()
}
