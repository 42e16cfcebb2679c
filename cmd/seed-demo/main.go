package main

import (
	"context"
	"fmt"
	"time"

	"github.com/campusgrid/timetable-backend/internal/config"
	"github.com/campusgrid/timetable-backend/internal/database"
	"github.com/campusgrid/timetable-backend/internal/logger"
	"github.com/campusgrid/timetable-backend/internal/model"
	"github.com/campusgrid/timetable-backend/internal/repository"
	"github.com/campusgrid/timetable-backend/internal/service"
)

// Seeds a small demo campus: two buildings with rooms, two levels with
// groups and sections, staff, courses and one published demo week.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	buildingRepo := repository.NewBuildingRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	levelRepo := repository.NewLevelRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	taRepo := repository.NewTARepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)

	scheduleService := service.NewScheduleService(scheduleRepo, rdb, log)

	fmt.Println("=== Seeding demo campus ===")

	// ─── Buildings & rooms ─────────────────────────────────────────────
	mainBldg := &model.Building{Name: "Main Building"}
	science := &model.Building{Name: "Science Wing"}
	for _, b := range []*model.Building{mainBldg, science} {
		if err := buildingRepo.Create(ctx, b); err != nil {
			log.Fatal().Err(err).Str("building", b.Name).Msg("Failed to create building")
		}
	}

	theater := &model.Room{BuildingID: mainBldg.ID, Number: "T-100", Type: model.RoomTypeTheater, Capacity: 200}
	classA := &model.Room{BuildingID: mainBldg.ID, Number: "C-201", Type: model.RoomTypeClassroom, Capacity: 40}
	classB := &model.Room{BuildingID: mainBldg.ID, Number: "C-202", Type: model.RoomTypeClassroom, Capacity: 40}
	lab := &model.Room{BuildingID: science.ID, Number: "L-01", Type: model.RoomTypeLab, Capacity: 30}
	grandHall := &model.Room{BuildingID: mainBldg.ID, Number: "Grand Hall", Type: model.RoomTypeHall, Capacity: 400}
	for _, rm := range []*model.Room{theater, classA, classB, lab, grandHall} {
		if err := roomRepo.Create(ctx, rm); err != nil {
			log.Fatal().Err(err).Str("room", rm.Number).Msg("Failed to create room")
		}
	}

	// ─── Levels, groups, sections ──────────────────────────────────────
	level1 := &model.Level{Name: "Level 1", NumSections: 2, NumGroupsPerSection: 1, TotalStudents: 80}
	level2 := &model.Level{Name: "Level 2", NumSections: 2, NumGroupsPerSection: 2, TotalStudents: 70}
	for _, l := range []*model.Level{level1, level2} {
		if err := levelRepo.Create(ctx, l); err != nil {
			log.Fatal().Err(err).Str("level", l.Name).Msg("Failed to create level")
		}
	}

	l1g1 := &model.Group{LevelID: level1.ID, Number: 1, NumStudents: 80}
	l2g1 := &model.Group{LevelID: level2.ID, Number: 1, NumStudents: 35}
	l2g2 := &model.Group{LevelID: level2.ID, Number: 2, NumStudents: 35}
	for _, g := range []*model.Group{l1g1, l2g1, l2g2} {
		if err := groupRepo.Create(ctx, g); err != nil {
			log.Fatal().Err(err).Int("level_id", g.LevelID).Int("number", g.Number).Msg("Failed to create group")
		}
	}

	var sections []*model.Section
	l1g1s0 := &model.Section{LevelID: level1.ID, GroupID: l1g1.ID, Number: 0, NumStudents: 40}
	l1g1s1 := &model.Section{LevelID: level1.ID, GroupID: l1g1.ID, Number: 1, NumStudents: 40}
	l2g1s0 := &model.Section{LevelID: level2.ID, GroupID: l2g1.ID, Number: 0, NumStudents: 35}
	l2g2s0 := &model.Section{LevelID: level2.ID, GroupID: l2g2.ID, Number: 0, NumStudents: 35}
	sections = append(sections, l1g1s0, l1g1s1, l2g1s0, l2g2s0)
	for _, s := range sections {
		if err := sectionRepo.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Int("group_id", s.GroupID).Int("number", s.Number).Msg("Failed to create section")
		}
	}

	// ─── Staff ─────────────────────────────────────────────────────────
	drAdams := &model.Instructor{Name: "Dr. Adams"}
	drBaker := &model.Instructor{Name: "Dr. Baker"}
	for _, i := range []*model.Instructor{drAdams, drBaker} {
		if err := instructorRepo.Create(ctx, i); err != nil {
			log.Fatal().Err(err).Str("instructor", i.Name).Msg("Failed to create instructor")
		}
	}

	taCole := &model.TA{Name: "Eng. Cole"}
	taDrew := &model.TA{Name: "Eng. Drew"}
	for _, t := range []*model.TA{taCole, taDrew} {
		if err := taRepo.Create(ctx, t); err != nil {
			log.Fatal().Err(err).Str("ta", t.Name).Msg("Failed to create TA")
		}
	}

	// ─── Courses ───────────────────────────────────────────────────────
	math := &model.Course{
		Code: "MATH101", Name: "Calculus I", LevelID: level1.ID,
		LectureSlots: 2, TutorialSlots: 1,
		InstructorIDs: []int{drAdams.ID}, TAIDs: []int{taCole.ID},
	}
	phys := &model.Course{
		Code: "PHYS202", Name: "Classical Mechanics", LevelID: level2.ID,
		LectureSlots: 2, LabSlots: 1.5,
		InstructorIDs: []int{drBaker.ID}, TAIDs: []int{taDrew.ID},
	}
	for _, c := range []*model.Course{math, phys} {
		if err := courseRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("course", c.Code).Msg("Failed to create course")
		}
	}

	// ─── One demo week ─────────────────────────────────────────────────
	entries := []model.ScheduleEntry{
		// Level 1 lecture in the hall, spanning both sections for two blocks.
		{CourseID: math.ID, GroupID: l1g1.ID, InstructorID: &drAdams.ID,
			RoomID: grandHall.ID, Day: "Sunday", StartBlock: 0, DurationBlocks: 2, SessionType: model.SessionLecture},
		// Section tutorials after the first break.
		{CourseID: math.ID, GroupID: l1g1.ID, SectionID: &l1g1s0.ID, TAID: &taCole.ID,
			RoomID: classA.ID, Day: "Sunday", StartBlock: 2, DurationBlocks: 1, SessionType: model.SessionTutorial},
		{CourseID: math.ID, GroupID: l1g1.ID, SectionID: &l1g1s1.ID, TAID: &taCole.ID,
			RoomID: classB.ID, Day: "Sunday", StartBlock: 3, DurationBlocks: 1, SessionType: model.SessionTutorial},
		// Level 2 lectures and a two-block lab.
		{CourseID: phys.ID, GroupID: l2g1.ID, InstructorID: &drBaker.ID,
			RoomID: theater.ID, Day: "Monday", StartBlock: 0, DurationBlocks: 1, SessionType: model.SessionLecture},
		{CourseID: phys.ID, GroupID: l2g2.ID, InstructorID: &drBaker.ID,
			RoomID: theater.ID, Day: "Monday", StartBlock: 1, DurationBlocks: 1, SessionType: model.SessionLecture},
		{CourseID: phys.ID, GroupID: l2g1.ID, SectionID: &l2g1s0.ID, TAID: &taDrew.ID,
			RoomID: lab.ID, Day: "Tuesday", StartBlock: 4, DurationBlocks: 2, SessionType: model.SessionLab},
	}

	if err := scheduleService.Replace(ctx, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to publish demo schedule")
	}

	fmt.Printf("Seeded %d rooms, %d sections, %d courses, %d sessions\n",
		5, len(sections), 2, len(entries))
	fmt.Println("=== Done ===")
}
