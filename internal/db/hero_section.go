package db

import "gorm.io/gorm"

// HeroSection is a homepage banner. Order ranks it inside the slider.
type HeroSection struct {
	gorm.Model
	Title           string `gorm:"size:255;default:Welcome to Our Student Organization"`
	Subtitle        string `gorm:"type:text"`
	BackgroundImage string `gorm:"size:500"`
	CTAText         string `gorm:"column:cta_text;size:100;default:Get Involved"`
	CTALink         string `gorm:"column:cta_link;size:255;default:#about"`
	IsActive        bool   `gorm:"index"`
	Order           int    `gorm:"column:display_order;default:0"`
}
