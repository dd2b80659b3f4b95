package main

import (
	"fmt"
	"time"

	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/service"
	"gorm.io/gorm"
)

type summary struct {
	created map[string]int
	order   []string
}

func newSummary() *summary {
	return &summary{created: map[string]int{}}
}

func (s *summary) add(kind string, created bool) {
	if _, ok := s.created[kind]; !ok {
		s.order = append(s.order, kind)
		s.created[kind] = 0
	}
	if created {
		s.created[kind]++
	}
}

func (s *summary) lines() []string {
	out := make([]string, 0, len(s.order)+1)
	for _, kind := range s.order {
		out = append(out, fmt.Sprintf("%-14s %d created", kind, s.created[kind]))
	}
	return append(out, "seed complete")
}

// seed loads the sample site content. Rows are matched on a natural key and
// left untouched when they already exist, so running it twice is harmless.
func seed(gdb *gorm.DB, withSamples bool) (*summary, error) {
	sum := newSummary()
	steps := []func(*gorm.DB, *summary) error{
		seedSingletons,
		seedHeroes,
		seedServices,
		seedTeam,
		seedTestimonials,
		seedGallery,
		seedFAQs,
	}
	if withSamples {
		steps = append(steps, seedEvents, seedNews)
	}

	for _, step := range steps {
		if err := step(gdb, sum); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// exists reports whether model has a row where column equals value.
func exists(gdb *gorm.DB, model interface{}, column string, value interface{}) (bool, error) {
	var count int64
	if err := gdb.Model(model).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func getOrCreate[In any, Out any](gdb *gorm.DB, sum *summary, kind string, model interface{}, column string, key func(In) string, items []In, create func(In) (Out, error)) error {
	for _, item := range items {
		found, err := exists(gdb, model, column, key(item))
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if found {
			sum.add(kind, false)
			continue
		}
		if _, err := create(item); err != nil {
			return fmt.Errorf("%s %q: %w", kind, key(item), err)
		}
		sum.add(kind, true)
	}
	return nil
}

func seedSingletons(gdb *gorm.DB, sum *summary) error {
	site := service.NewSiteService(gdb)

	_, created, err := site.EnsureSettings(service.SiteSettingsInput{
		SiteName:    "Student Organization",
		SiteTagline: "Empowering Students, Building Communities",
		Email:       "info@studentorg.com",
		Phone:       "+1 (555) 123-4567",
		Address:     "123 University Ave, Campus Building, Room 101",
		Facebook:    "https://facebook.com/studentorg",
		Twitter:     "https://twitter.com/studentorg",
		Instagram:   "https://instagram.com/studentorg",
		LinkedIn:    "https://linkedin.com/company/studentorg",
		FooterText:  "© 2026 Student Organization. All rights reserved. Empowering students to make a difference.",
	})
	if err != nil {
		return fmt.Errorf("site settings: %w", err)
	}
	sum.add("site settings", created)

	_, created, err = site.EnsureAbout(service.AboutInput{
		Heading:    "About Our Organization",
		Subheading: "Making a Difference Since 2020",
		Content:    "We are a dedicated group of students committed to serving our community and creating positive change. Through various initiatives, events, and partnerships, we strive to make our campus and local community a better place for everyone.",
		Image:      "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=800",
		Mission:    "To empower students to become leaders and changemakers through community service, educational programs, and collaborative initiatives.",
		Vision:     "A campus where every student has the opportunity to make a meaningful impact and develop their full potential.",
		Values:     "Leadership\nService\nIntegrity\nCommunity\nInnovation\nDiversity",
	})
	if err != nil {
		return fmt.Errorf("about section: %w", err)
	}
	sum.add("about section", created)
	return nil
}

func seedHeroes(gdb *gorm.DB, sum *summary) error {
	content := service.NewContentService(gdb)
	heroes := []service.HeroInput{{
		Title:           "Welcome to Our Student Organization",
		Subtitle:        "Join us in making a positive impact on our campus and community through service, leadership, and friendship",
		BackgroundImage: "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=1200",
		CTAText:         "Get Involved",
		CTALink:         "#about",
		Order:           1,
	}}
	return getOrCreate(gdb, sum, "heroes", &db.HeroSection{}, "display_order",
		func(in service.HeroInput) string { return fmt.Sprint(in.Order) }, heroes, content.CreateHero)
}

func seedServices(gdb *gorm.DB, sum *summary) error {
	content := service.NewContentService(gdb)
	services := []service.ServiceInput{
		{Title: "Community Service", Description: "Organize and participate in various community service projects and volunteer opportunities", Icon: "fas fa-hands-helping", Order: 1},
		{Title: "Leadership Development", Description: "Workshops and training sessions to develop leadership skills and personal growth", Icon: "fas fa-user-tie", Order: 2},
		{Title: "Networking Events", Description: "Connect with peers, alumni, and professionals through various networking opportunities", Icon: "fas fa-users", Order: 3},
		{Title: "Educational Programs", Description: "Seminars, workshops, and guest speaker events on various topics", Icon: "fas fa-graduation-cap", Order: 4},
		{Title: "Social Activities", Description: "Fun events and activities to build friendships and create memorable experiences", Icon: "fas fa-calendar-alt", Order: 5},
		{Title: "Mentorship Program", Description: "Connect with mentors for guidance and support throughout your academic journey", Icon: "fas fa-handshake", Order: 6},
	}
	return getOrCreate(gdb, sum, "services", &db.Service{}, "title",
		func(in service.ServiceInput) string { return in.Title }, services, content.CreateService)
}

func seedTeam(gdb *gorm.DB, sum *summary) error {
	content := service.NewContentService(gdb)
	team := []service.TeamMemberInput{
		{Name: "Sarah Johnson", Position: "president", Bio: "Senior in Business Administration, passionate about community service", Photo: "https://i.pravatar.cc/300?img=5", Email: "sarah@studentorg.com", Order: 1},
		{Name: "Michael Chen", Position: "vice_president", Bio: "Junior in Computer Science, focused on innovation and technology", Photo: "https://i.pravatar.cc/300?img=13", Email: "michael@studentorg.com", Order: 2},
		{Name: "Emily Rodriguez", Position: "secretary", Bio: "Sophomore in Communications, excellent organizer and communicator", Photo: "https://i.pravatar.cc/300?img=9", Email: "emily@studentorg.com", Order: 3},
		{Name: "David Kim", Position: "treasurer", Bio: "Senior in Accounting, managing our finances with precision", Photo: "https://i.pravatar.cc/300?img=12", Email: "david@studentorg.com", Order: 4},
	}
	return getOrCreate(gdb, sum, "team", &db.TeamMember{}, "name",
		func(in service.TeamMemberInput) string { return in.Name }, team, content.CreateTeamMember)
}

func seedTestimonials(gdb *gorm.DB, sum *summary) error {
	content := service.NewContentService(gdb)
	items := []service.TestimonialInput{
		{Name: "Jessica Martinez", Role: "Alumni Member", Content: "Being part of this organization was the best decision I made in college. The friendships and experiences I gained here shaped who I am today.", Photo: "https://i.pravatar.cc/300?img=1", Rating: 5, Order: 1},
		{Name: "Alex Thompson", Role: "Current Member", Content: "The leadership opportunities and community service projects have helped me grow both personally and professionally. Highly recommend joining!", Photo: "https://i.pravatar.cc/300?img=14", Rating: 5, Order: 2},
		{Name: "Priya Patel", Role: "Event Participant", Content: "I attended their blood donation camp and was impressed by the professionalism and dedication of the team. They truly make a difference!", Photo: "https://i.pravatar.cc/300?img=20", Rating: 5, Order: 3},
	}
	return getOrCreate(gdb, sum, "testimonials", &db.Testimonial{}, "name",
		func(in service.TestimonialInput) string { return in.Name }, items, content.CreateTestimonial)
}

func seedGallery(gdb *gorm.DB, sum *summary) error {
	gallery := service.NewGalleryService(gdb)
	order := func(v int) *int { return &v }
	items := []service.GalleryInput{
		{Title: "Community Cleanup Day", Description: "Members volunteering at local park cleanup", Image: "https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800", Category: "Community Service", Order: order(1)},
		{Title: "Leadership Workshop", Description: "Annual leadership development workshop", Image: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800", Category: "Events", Order: order(2)},
		{Title: "Blood Donation Drive", Description: "Successful blood donation campaign", Image: "https://images.unsplash.com/photo-1615461065929-4f8ffed6ca40?w=800", Category: "Health", Order: order(3)},
		{Title: "Team Building Activity", Description: "Fun team bonding activities", Image: "https://images.unsplash.com/photo-1523580494863-6f3031224c94?w=800", Category: "Social", Order: order(4)},
	}
	return getOrCreate(gdb, sum, "gallery", &db.Gallery{}, "title",
		func(in service.GalleryInput) string { return in.Title }, items, gallery.Create)
}

func seedFAQs(gdb *gorm.DB, sum *summary) error {
	content := service.NewContentService(gdb)
	faqs := []service.FAQInput{
		{Question: "How can I join the organization?", Answer: "You can join by filling out our membership form on the website or attending one of our events. Membership is open to all students.", Category: "Membership", Order: 1},
		{Question: "Are there any membership fees?", Answer: "Yes, there is a small annual membership fee of $20 which helps cover event costs and organizational expenses.", Category: "Membership", Order: 2},
		{Question: "What types of events do you organize?", Answer: "We organize community service projects, leadership workshops, social events, blood donation drives, and educational seminars throughout the year.", Category: "Events", Order: 3},
		{Question: "Can I volunteer without being a member?", Answer: "Absolutely! Many of our events are open to all students, and we welcome volunteers even if they are not official members.", Category: "Volunteering", Order: 4},
		{Question: "How often do you meet?", Answer: "We have general meetings twice a month and various committee meetings weekly. Check our events calendar for specific dates.", Category: "General", Order: 5},
	}
	return getOrCreate(gdb, sum, "faqs", &db.FAQ{}, "question",
		func(in service.FAQInput) string { return in.Question }, faqs, content.CreateFAQ)
}

func seedEvents(gdb *gorm.DB, sum *summary) error {
	events := service.NewEventService(gdb)
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}
	items := []service.EventInput{
		{Title: "Blood Donation Camp", Date: day(3), StartTime: "09:00", EndTime: "16:00", Location: "Main Campus Hall", Description: "Join us for our quarterly blood donation drive. Save lives!", Image: "https://images.unsplash.com/photo-1615461065929-4f8ffed6ca40?w=400", ShowInSlider: true},
		{Title: "Leadership Workshop", Date: day(8), StartTime: "14:00", EndTime: "17:00", Location: "Conference Room A", Description: "Develop your leadership skills with expert facilitators.", Image: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=400"},
		{Title: "Annual Cultural Festival", Date: day(16), StartTime: "10:00", EndTime: "20:00", Location: "University Grounds", Description: "Celebrate diversity with music, dance, food, and more!", Image: "https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=400"},
	}
	return getOrCreate(gdb, sum, "events", &db.Event{}, "title",
		func(in service.EventInput) string { return in.Title }, items, events.Create)
}

func seedNews(gdb *gorm.DB, sum *summary) error {
	news := service.NewNewsService(gdb)
	items := []service.NewsInput{
		{
			Title:        "Record-Breaking Blood Donation Drive",
			Image:        "https://images.unsplash.com/photo-1615461065929-4f8ffed6ca40?w=800",
			Excerpt:      "Our latest blood donation camp collected 150 units, helping save over 450 lives. Thank you to all our amazing donors!",
			Content:      "Our latest blood donation camp was a tremendous success! With the support of our dedicated volunteers and generous donors, we collected 150 units of blood, which will help save over 450 lives.",
			ShowInSlider: true,
		},
		{
			Title:   "Partnership with Local Hospital",
			Image:   "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800",
			Excerpt: "We're excited to announce our new partnership with City Hospital for enhanced healthcare initiatives.",
			Content: "We are thrilled to announce our new partnership with City Hospital to bring enhanced healthcare initiatives to our campus community.",
		},
		{
			Title:   "Best Student Organization Award",
			Image:   "https://images.unsplash.com/photo-1567427017947-545c5f8d16ad?w=800",
			Excerpt: "Proud to receive the Best Student Organization Award for our outstanding community service efforts!",
			Content: "We are incredibly proud to announce that our organization has been awarded the Best Student Organization Award at the Annual University Awards Ceremony.",
		},
	}
	return getOrCreate(gdb, sum, "news", &db.NewsArticle{}, "title",
		func(in service.NewsInput) string { return in.Title }, items, news.Create)
}
